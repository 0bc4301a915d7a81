package llm

import "testing"

func TestExtractScore(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "plain", text: "Summary...\nTotal Score: 87\n", want: "87"},
		{name: "markdown bold", text: "**Total Score:** 92", want: "92"},
		{name: "lowercase", text: "total score 100", want: "100"},
		{name: "no colon", text: "Total Score 5", want: "5"},
		{name: "embedded in prose", text: "The Total Score: 64 reflects strong alignment.", want: "64"},
		{name: "missing", text: "No score line anywhere", want: ScoreNotFound},
		{name: "empty", text: "", want: ScoreNotFound},
		{name: "label without digits", text: "Total Score: pending", want: ScoreNotFound},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractScore(tt.text); got != tt.want {
				t.Fatalf("ExtractScore(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
