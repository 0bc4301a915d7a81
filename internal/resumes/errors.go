package resumes

import "errors"

var (
	// ErrNotFound means no resume record exists for the id.
	ErrNotFound = errors.New("resume not found")
	// ErrInvalidInput means a required field was missing or malformed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrExtraction means the uploaded document's text could not be extracted.
	ErrExtraction = errors.New("text extraction failed")
)
