package users

import (
	"context"
	"strings"
	"sync"
)

// MemoryRepo stores login records in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu      sync.RWMutex
	byID    map[string]User
	byEmail map[string]string
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:    make(map[string]User),
		byEmail: make(map[string]string),
	}
}

// Create stores the login record, enforcing email uniqueness.
func (r *MemoryRepo) Create(ctx context.Context, user User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	key := emailKey(user.Email)
	if _, exists := r.byEmail[key]; exists {
		return ErrEmailExists
	}
	r.byID[user.ID] = user
	r.byEmail[key] = user.ID
	return nil
}

// GetByEmail returns the login record for an email.
func (r *MemoryRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[emailKey(email)]
	if !ok {
		return User{}, ErrNotFound
	}
	return r.byID[id], nil
}

// GetByID returns the login record for a user id.
func (r *MemoryRepo) GetByID(ctx context.Context, userID string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byID[userID]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var _ Repo = (*MemoryRepo)(nil)
