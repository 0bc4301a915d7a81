package llm

import "regexp"

// ScoreNotFound is returned when the model output carries no score line.
const ScoreNotFound = "Score not found"

// Tolerates markdown decoration around the label, e.g. "**Total Score:** 87".
var scoreRe = regexp.MustCompile(`(?i)total score[:*]*\s*(\d{1,3})`)

// ExtractScore pulls the "Total Score" digits out of model output.
func ExtractScore(text string) string {
	match := scoreRe.FindStringSubmatch(text)
	if match == nil {
		return ScoreNotFound
	}
	return match[1]
}
