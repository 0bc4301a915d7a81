package profiles

import "errors"

var (
	// ErrNotFound means no profile exists for the user id.
	ErrNotFound = errors.New("profile not found")
	// ErrInvalidInput means a required field was missing or malformed.
	ErrInvalidInput = errors.New("invalid input")
)
