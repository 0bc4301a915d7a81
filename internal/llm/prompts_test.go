package llm

import (
	"strings"
	"testing"
)

func TestBuildRewritePromptEmbedsInputsVerbatim(t *testing.T) {
	resume := "Experienced engineer with 5 years in data platforms."
	jd := "Seeking a PM for a data-centric SaaS product."

	prompt := BuildRewritePrompt(resume, jd)

	if !strings.Contains(prompt, resume) {
		t.Fatal("resume text missing from prompt")
	}
	if !strings.Contains(prompt, jd) {
		t.Fatal("job description missing from prompt")
	}
	if strings.Contains(prompt, "{{RESUME_TEXT}}") || strings.Contains(prompt, "{{JOB_DESCRIPTION}}") {
		t.Fatal("placeholders left unexpanded")
	}

	// The scoring rubric is part of the contract with the model.
	for _, criterion := range []string{
		"Job Fit (20%)",
		"Skill Alignment (25%)",
		"Experience Relevance (25%)",
		"Action Verbs and Clarity (15%)",
		"Measurable Achievements (15%)",
		`referred to as "Total Score"`,
	} {
		if !strings.Contains(prompt, criterion) {
			t.Fatalf("prompt missing %q", criterion)
		}
	}
}
