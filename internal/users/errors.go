package users

import "errors"

var (
	// ErrNotFound indicates no login record matches.
	ErrNotFound = errors.New("user not found")

	// ErrEmailExists indicates a signup with an already registered email.
	ErrEmailExists = errors.New("email already exists")

	// ErrInvalidCredential indicates a password mismatch.
	ErrInvalidCredential = errors.New("invalid credential")

	// ErrInvalidInput indicates validation failed.
	ErrInvalidInput = errors.New("invalid input")
)
