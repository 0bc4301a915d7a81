package resumes

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/byteKumar/pepperuni/internal/llm"
	"github.com/byteKumar/pepperuni/internal/shared/storage/object/local"
)

type fakeExtractor struct {
	err error
}

func (f fakeExtractor) Extract(ctx context.Context, data []byte, mimeType string, fileName string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return string(data), nil
}

type fakeRewriter struct {
	text string
	err  error

	gotResumeText     string
	gotJobDescription string
}

func (f *fakeRewriter) Rewrite(ctx context.Context, resumeText string, jobDescription string) (string, string, error) {
	f.gotResumeText = resumeText
	f.gotJobDescription = jobDescription
	if f.err != nil {
		return "", "", f.err
	}
	return f.text, llm.ExtractScore(f.text), nil
}

func newTestPipeline(t *testing.T, extractor TextExtractor, rewriter llm.Rewriter) (*Pipeline, string) {
	t.Helper()
	spoolDir := t.TempDir()
	p := NewPipeline(local.New(spoolDir), extractor, rewriter, NewMemoryRepo())
	p.now = func() time.Time { return time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC) }
	return p, spoolDir
}

func countFiles(t *testing.T, dir string) int {
	t.Helper()
	var n int
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			n++
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", dir, err)
	}
	return n
}

func TestSubmitStoresRewrittenResume(t *testing.T) {
	rewriter := &fakeRewriter{text: "Tailored resume body.\n\nTotal Score: 92"}
	p, spoolDir := newTestPipeline(t, fakeExtractor{}, rewriter)
	ctx := context.Background()

	resumeID, err := p.Submit(ctx, SubmitInput{
		UserID:         "user-1",
		FileName:       "ada_resume.pdf",
		File:           strings.NewReader("Original resume text."),
		JobTitle:       "Product Manager",
		JobDescription: "Own the roadmap.",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if resumeID == "" {
		t.Fatal("expected a resume id")
	}

	resume, err := p.GetByID(ctx, resumeID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if resume.ResumeText != rewriter.text {
		t.Fatalf("ResumeText = %q, want %q", resume.ResumeText, rewriter.text)
	}
	if resume.Score != "92" {
		t.Fatalf("Score = %q, want %q", resume.Score, "92")
	}
	if resume.Filename != "ada_resume" {
		t.Fatalf("Filename = %q, want %q", resume.Filename, "ada_resume")
	}
	if resume.JobTitle != "Product Manager" {
		t.Fatalf("JobTitle = %q, want %q", resume.JobTitle, "Product Manager")
	}
	if _, err := time.Parse(createdDateLayout, resume.CreatedDate); err != nil {
		t.Fatalf("CreatedDate %q does not match layout: %v", resume.CreatedDate, err)
	}
	if rewriter.gotResumeText != "Original resume text." {
		t.Fatalf("rewriter saw %q", rewriter.gotResumeText)
	}
	if rewriter.gotJobDescription != "Own the roadmap." {
		t.Fatalf("rewriter saw job description %q", rewriter.gotJobDescription)
	}

	if n := countFiles(t, spoolDir); n != 0 {
		t.Fatalf("expected spool dir to be empty, found %d files", n)
	}
}

func TestSubmitExtractionFailure(t *testing.T) {
	p, spoolDir := newTestPipeline(t, fakeExtractor{err: errors.New("corrupt document")}, &fakeRewriter{})
	ctx := context.Background()

	_, err := p.Submit(ctx, SubmitInput{
		UserID:         "user-1",
		FileName:       "broken.pdf",
		File:           strings.NewReader("garbage"),
		JobDescription: "jd",
	})
	if !errors.Is(err, ErrExtraction) {
		t.Fatalf("expected ErrExtraction, got %v", err)
	}

	if summaries, err := p.ListByUser(ctx, "user-1"); err != nil || len(summaries) != 0 {
		t.Fatalf("expected no stored records, got %v, %v", summaries, err)
	}
	if n := countFiles(t, spoolDir); n != 0 {
		t.Fatalf("expected spool dir to be empty after failure, found %d files", n)
	}
}

func TestSubmitRewriteFailurePropagates(t *testing.T) {
	rewriter := &fakeRewriter{err: errors.New("provider unavailable")}
	p, _ := newTestPipeline(t, fakeExtractor{}, rewriter)
	ctx := context.Background()

	_, err := p.Submit(ctx, SubmitInput{
		UserID:         "user-1",
		FileName:       "resume.pdf",
		File:           strings.NewReader("text"),
		JobDescription: "jd",
	})
	if err == nil || errors.Is(err, ErrExtraction) {
		t.Fatalf("expected rewrite error, got %v", err)
	}

	if summaries, listErr := p.ListByUser(ctx, "user-1"); listErr != nil || len(summaries) != 0 {
		t.Fatalf("expected no stored records, got %v, %v", summaries, listErr)
	}
}

func TestSubmitMissingFields(t *testing.T) {
	p, _ := newTestPipeline(t, fakeExtractor{}, &fakeRewriter{text: "x"})

	_, err := p.Submit(context.Background(), SubmitInput{
		UserID:   "user-1",
		FileName: "resume.pdf",
		File:     strings.NewReader("text"),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestListByUserEmpty(t *testing.T) {
	p, _ := newTestPipeline(t, fakeExtractor{}, &fakeRewriter{})

	summaries, err := p.ListByUser(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if summaries == nil || len(summaries) != 0 {
		t.Fatalf("expected empty slice, got %#v", summaries)
	}
}

func TestListByUserOrdersByCreation(t *testing.T) {
	repo := NewMemoryRepo()
	p := &Pipeline{Repo: repo, now: time.Now}
	ctx := context.Background()

	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"r-2", "r-1", "r-3"} {
		offsets := map[string]int{"r-1": 0, "r-2": 1, "r-3": 2}
		err := repo.Create(ctx, Resume{
			ID:        id,
			UserID:    "user-1",
			Filename:  id,
			CreatedAt: base.Add(time.Duration(offsets[id]) * time.Minute),
		})
		if err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	summaries, err := p.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	got := []string{summaries[0].ResumeID, summaries[1].ResumeID, summaries[2].ResumeID}
	want := []string{"r-1", "r-2", "r-3"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}
