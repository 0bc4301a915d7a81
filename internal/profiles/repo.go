package profiles

import "context"

// Repo persists profile records keyed by user id.
type Repo interface {
	// Upsert inserts or wholesale-replaces the profile for its user id.
	// It reports whether a new record was created.
	Upsert(ctx context.Context, profile Profile) (created bool, err error)
	// GetByUser returns the profile for a user id, or ErrNotFound.
	GetByUser(ctx context.Context, userID string) (Profile, error)
}
