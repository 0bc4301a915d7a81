package profiles

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Upsert inserts or replaces the profile row for the user id. The xmax
// system column distinguishes a fresh insert from a conflict update.
func (r *PGRepo) Upsert(ctx context.Context, profile Profile) (bool, error) {
	const query = `
INSERT INTO user_profiles (user_id, name, email, phone, linkedin, portfolio, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (user_id) DO UPDATE SET
    name       = EXCLUDED.name,
    email      = EXCLUDED.email,
    phone      = EXCLUDED.phone,
    linkedin   = EXCLUDED.linkedin,
    portfolio  = EXCLUDED.portfolio,
    updated_at = EXCLUDED.updated_at
RETURNING (xmax = 0) AS created`
	var created bool
	err := r.DB.QueryRowContext(ctx, query,
		profile.UserID,
		profile.Name,
		profile.Email,
		profile.Phone,
		profile.LinkedIn,
		profile.Portfolio,
		profile.UpdatedAt,
	).Scan(&created)
	if err != nil {
		return false, err
	}
	return created, nil
}

// GetByUser returns the profile row for a user id.
func (r *PGRepo) GetByUser(ctx context.Context, userID string) (Profile, error) {
	const query = `
SELECT user_id, name, email, phone, linkedin, portfolio, updated_at
FROM user_profiles
WHERE user_id = $1
LIMIT 1`
	var profile Profile
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.Name,
		&profile.Email,
		&profile.Phone,
		&profile.LinkedIn,
		&profile.Portfolio,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	return profile, nil
}

var _ Repo = (*PGRepo)(nil)
