package users

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Service implements signup and signin on top of a Repo.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Register creates a login record with a bcrypt password hash and returns the
// new user id. A registered email yields ErrEmailExists.
func (s *Service) Register(ctx context.Context, studentName, email, password string) (string, error) {
	studentName = strings.TrimSpace(studentName)
	email = strings.TrimSpace(email)
	if studentName == "" || email == "" || password == "" {
		return "", ErrInvalidInput
	}

	if _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		return "", ErrEmailExists
	} else if err != ErrNotFound {
		return "", fmt.Errorf("check existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := User{
		ID:           uuid.NewString(),
		StudentName:  studentName,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return "", err
	}
	return user.ID, nil
}

// Authenticate verifies the email/password pair and returns the login record.
// Unknown emails yield ErrNotFound, bad passwords ErrInvalidCredential.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return User{}, ErrInvalidInput
	}

	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredential
	}
	return user, nil
}

// GetByID returns the login record for a user id.
func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if strings.TrimSpace(userID) == "" {
		return User{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID)
}
