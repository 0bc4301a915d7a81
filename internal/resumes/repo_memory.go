package resumes

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores resume records in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Resume
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Resume)}
}

// Create stores a resume record.
func (r *MemoryRepo) Create(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[resume.ID] = resume
	return nil
}

// GetByID returns the record for a resume id.
func (r *MemoryRepo) GetByID(ctx context.Context, resumeID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	resume, ok := r.byID[resumeID]
	if !ok {
		return Resume{}, ErrNotFound
	}
	return resume, nil
}

// ListByUser returns the user's records in creation order. A user with no
// records yields an empty slice.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Resume, 0)
	for _, resume := range r.byID {
		if resume.UserID == userID {
			out = append(out, resume)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
