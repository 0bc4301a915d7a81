package llm

import (
	"context"
	"errors"
)

// Rewriter tailors a resume to a job description via an LLM provider.
type Rewriter interface {
	Rewrite(ctx context.Context, resumeText string, jobDescription string) (rewritten string, score string, err error)
}

// ErrNotImplemented is returned by the placeholder rewriter.
var ErrNotImplemented = errors.New("LLM not implemented")

// PlaceholderRewriter is a stub implementation until provider wiring is added.
type PlaceholderRewriter struct{}

// Rewrite returns ErrNotImplemented.
func (PlaceholderRewriter) Rewrite(ctx context.Context, resumeText string, jobDescription string) (string, string, error) {
	_ = ctx
	_ = resumeText
	_ = jobDescription
	return "", "", ErrNotImplemented
}
