package resumes

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a resume record.
func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO user_resumes (id, user_id, filename, job_title, resume_text, score, created_date, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.DB.ExecContext(ctx, query,
		resume.ID,
		resume.UserID,
		resume.Filename,
		resume.JobTitle,
		resume.ResumeText,
		resume.Score,
		resume.CreatedDate,
		resume.CreatedAt,
	)
	return err
}

// GetByID returns the record for a resume id.
func (r *PGRepo) GetByID(ctx context.Context, resumeID string) (Resume, error) {
	const query = `
SELECT id, user_id, filename, job_title, resume_text, score, created_date, created_at
FROM user_resumes
WHERE id = $1
LIMIT 1`
	var resume Resume
	err := r.DB.QueryRowContext(ctx, query, resumeID).Scan(
		&resume.ID,
		&resume.UserID,
		&resume.Filename,
		&resume.JobTitle,
		&resume.ResumeText,
		&resume.Score,
		&resume.CreatedDate,
		&resume.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
}

// ListByUser returns the user's records in creation order.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Resume, error) {
	const query = `
SELECT id, user_id, filename, job_title, resume_text, score, created_date, created_at
FROM user_resumes
WHERE user_id = $1
ORDER BY created_at ASC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Resume, 0)
	for rows.Next() {
		var resume Resume
		err := rows.Scan(
			&resume.ID,
			&resume.UserID,
			&resume.Filename,
			&resume.JobTitle,
			&resume.ResumeText,
			&resume.Score,
			&resume.CreatedDate,
			&resume.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

var _ Repo = (*PGRepo)(nil)
