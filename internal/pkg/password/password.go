// Package password provides the credential verifiers pluggable into
// the auth service. Plain keeps the historical verbatim comparison;
// Bcrypt is the drop-in stronger scheme.
package password

import "golang.org/x/crypto/bcrypt"

// DefaultCost is the bcrypt cost used when hashing.
const DefaultCost = 12

// Plain compares passwords verbatim, with no hashing, rate limiting or
// lockout. This matches the stock machine's directory of seeded users.
type Plain struct{}

func (Plain) Verify(supplied, stored string) bool {
	return supplied == stored
}

// Bcrypt expects the stored credential to be a bcrypt hash.
type Bcrypt struct{}

func (Bcrypt) Verify(supplied, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}

// Hash produces a bcrypt hash for seeding hashed user directories.
func Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
