package memory

import (
	"context"
	"sync"

	"faregate/internal/core/domain"
)

// UserRepo is the static operator directory. The set is loaded once at
// startup and never mutated, but reads still take the lock so the repo
// stays safe if a reload path is ever added.
type UserRepo struct {
	mu    sync.RWMutex
	users []domain.User
}

func NewUserRepo(seed []domain.User) *UserRepo {
	r := &UserRepo{}
	r.users = append(r.users, seed...)
	return r
}

// FindByUsername matches exactly, unlike station lookups.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].Username == username {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out, nil
}
