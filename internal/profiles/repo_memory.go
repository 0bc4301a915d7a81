package profiles

import (
	"context"
	"sync"
)

// MemoryRepo stores profiles in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu       sync.RWMutex
	byUserID map[string]Profile
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byUserID: make(map[string]Profile)}
}

// Upsert replaces the stored profile for the user id wholesale.
func (r *MemoryRepo) Upsert(ctx context.Context, profile Profile) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.byUserID[profile.UserID]
	r.byUserID[profile.UserID] = profile
	return !exists, nil
}

// GetByUser returns the profile for a user id.
func (r *MemoryRepo) GetByUser(ctx context.Context, userID string) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	profile, ok := r.byUserID[userID]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return profile, nil
}

var _ Repo = (*MemoryRepo)(nil)
