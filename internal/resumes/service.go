package resumes

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/byteKumar/pepperuni/internal/llm"
	"github.com/byteKumar/pepperuni/internal/shared/metrics"
	"github.com/byteKumar/pepperuni/internal/shared/storage/object"
	"github.com/byteKumar/pepperuni/internal/shared/telemetry"
	"github.com/byteKumar/pepperuni/internal/shared/util"
)

// createdDateLayout mirrors the display timestamp stored with each record,
// e.g. "Mon, 01 Sep 2026 10:30:00 EDT".
const createdDateLayout = "Mon, 02 Jan 2006 15:04:05 MST"

// TextExtractor pulls plain text out of an uploaded document.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte, mimeType string, fileName string) (string, error)
}

// Pipeline runs the submit workflow: spool the upload, extract its text,
// rewrite it against the job description, persist the result. All
// collaborators are injected at construction.
type Pipeline struct {
	Store     object.ObjectStore
	Extractor TextExtractor
	Rewriter  llm.Rewriter
	Repo      Repo

	now func() time.Time
}

// NewPipeline constructs a Pipeline.
func NewPipeline(store object.ObjectStore, extractor TextExtractor, rewriter llm.Rewriter, repo Repo) *Pipeline {
	return &Pipeline{
		Store:     store,
		Extractor: extractor,
		Rewriter:  rewriter,
		Repo:      repo,
		now:       time.Now,
	}
}

// SubmitInput carries one resume submission.
type SubmitInput struct {
	UserID         string
	FileName       string
	File           io.Reader
	JobTitle       string
	JobDescription string
}

// Submit runs the full pipeline and returns the new record id. Extraction
// failures wrap ErrExtraction so the handler can reject the upload; rewrite
// and store failures propagate as-is.
func (p *Pipeline) Submit(ctx context.Context, in SubmitInput) (string, error) {
	metrics.IncSubmissionStarted()
	started := p.now()

	resumeID, err := p.submit(ctx, in)

	metrics.ObserveSubmissionDurationMs(float64(time.Since(started)) / float64(time.Millisecond))
	if err != nil {
		metrics.IncSubmissionFailed()
		return "", err
	}
	metrics.IncSubmissionCompleted()
	return resumeID, nil
}

func (p *Pipeline) submit(ctx context.Context, in SubmitInput) (string, error) {
	if strings.TrimSpace(in.UserID) == "" || in.FileName == "" || in.File == nil || in.JobDescription == "" {
		return "", ErrInvalidInput
	}

	storageKey, _, mimeType, err := p.Store.Save(ctx, in.UserID, in.FileName, in.File)
	if err != nil {
		return "", fmt.Errorf("spool upload: %w", err)
	}
	defer func() {
		if removeErr := p.Store.Remove(context.WithoutCancel(ctx), storageKey); removeErr != nil {
			telemetry.Error("upload.spool_remove_failed", map[string]any{
				"storageKey": storageKey,
				"error":      removeErr.Error(),
			})
		}
	}()

	rc, err := p.Store.Open(ctx, storageKey)
	if err != nil {
		return "", fmt.Errorf("open spooled upload: %w", err)
	}
	data, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		return "", fmt.Errorf("read spooled upload: %w", err)
	}

	text, err := p.Extractor.Extract(ctx, data, mimeType, in.FileName)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	rewritten, score, err := p.Rewriter.Rewrite(ctx, text, in.JobDescription)
	if err != nil {
		return "", fmt.Errorf("rewrite resume: %w", err)
	}

	now := p.now()
	resume := Resume{
		ID:          uuid.NewString(),
		UserID:      in.UserID,
		Filename:    util.StripExtension(in.FileName),
		JobTitle:    in.JobTitle,
		ResumeText:  rewritten,
		Score:       score,
		CreatedDate: now.Local().Format(createdDateLayout),
		CreatedAt:   now.UTC(),
	}
	if err := p.Repo.Create(ctx, resume); err != nil {
		return "", fmt.Errorf("store resume: %w", err)
	}

	telemetry.Info("resume.submitted", map[string]any{
		"resumeId": resume.ID,
		"userId":   resume.UserID,
		"score":    resume.Score,
	})
	return resume.ID, nil
}

// GetByID returns the stored record for a resume id.
func (p *Pipeline) GetByID(ctx context.Context, resumeID string) (Resume, error) {
	if strings.TrimSpace(resumeID) == "" {
		return Resume{}, ErrInvalidInput
	}
	return p.Repo.GetByID(ctx, resumeID)
}

// ListByUser returns listing summaries for a user's records, oldest first.
func (p *Pipeline) ListByUser(ctx context.Context, userID string) ([]Summary, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	records, err := p.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]Summary, 0, len(records))
	for _, record := range records {
		out = append(out, Summarize(record))
	}
	return out, nil
}
