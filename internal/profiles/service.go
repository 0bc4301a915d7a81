package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/byteKumar/pepperuni/internal/users"
)

// LoginLookup resolves a user's login record so Upsert can fall back to
// the registered name and email when the request omits them.
type LoginLookup interface {
	GetByID(ctx context.Context, userID string) (users.User, error)
}

// Service implements profile upsert and lookup on top of a Repo.
type Service struct {
	Repo   Repo
	Logins LoginLookup
}

// NewService constructs a Service.
func NewService(repo Repo, logins LoginLookup) *Service {
	return &Service{Repo: repo, Logins: logins}
}

// Upsert replaces the user's profile wholesale and reports whether a new
// record was created. Empty name and email fall back to the login record
// when the user id resolves to one; an unknown user id keeps the provided
// values as-is.
func (s *Service) Upsert(ctx context.Context, profile Profile) (bool, error) {
	profile.UserID = strings.TrimSpace(profile.UserID)
	if profile.UserID == "" {
		return false, ErrInvalidInput
	}

	if profile.Name == "" || profile.Email == "" {
		login, err := s.Logins.GetByID(ctx, profile.UserID)
		switch {
		case err == nil:
			if profile.Name == "" {
				profile.Name = login.StudentName
			}
			if profile.Email == "" {
				profile.Email = login.Email
			}
		case errors.Is(err, users.ErrNotFound):
			// No login record; keep the provided values.
		default:
			return false, fmt.Errorf("resolve login record: %w", err)
		}
	}

	profile.UpdatedAt = time.Now().UTC()
	return s.Repo.Upsert(ctx, profile)
}

// Get returns the stored profile for a user id.
func (s *Service) Get(ctx context.Context, userID string) (Profile, error) {
	if strings.TrimSpace(userID) == "" {
		return Profile{}, ErrInvalidInput
	}
	return s.Repo.GetByUser(ctx, userID)
}
