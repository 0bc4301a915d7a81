package resumes

import "context"

// Repo persists resume records.
type Repo interface {
	// Create inserts a record. Records are never mutated afterwards.
	Create(ctx context.Context, resume Resume) error
	// GetByID returns the record for a resume id, or ErrNotFound.
	GetByID(ctx context.Context, resumeID string) (Resume, error)
	// ListByUser returns the user's records ordered by creation time.
	// A user with no records yields an empty slice, not an error.
	ListByUser(ctx context.Context, userID string) ([]Resume, error)
}
