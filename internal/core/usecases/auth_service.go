package usecases

import (
	"context"

	"faregate/internal/core/domain"
	"faregate/internal/core/ports"
)

// AuthService checks operator credentials. Whether the logged-in user
// may do something (the IsAdmin flag) is the caller's decision.
type AuthService struct {
	users    ports.UserRepository
	verifier ports.CredentialVerifier
}

// NewAuthService creates a new AuthService.
func NewAuthService(users ports.UserRepository, verifier ports.CredentialVerifier) *AuthService {
	return &AuthService{users: users, verifier: verifier}
}

// Login returns the matching user. A missing username and a wrong
// password produce the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !s.verifier.Verify(password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}
