package diagnosis

import (
	"strings"

	"github.com/abhisek/tutorcore/internal/extract"
)

// RepeatedClassifier flags a wrong answer matching the previous wrong
// answer, by raw text or by the option both resolve to.
type RepeatedClassifier struct{}

func (c *RepeatedClassifier) Name() string { return "repeated" }

func (c *RepeatedClassifier) Classify(input *ClassifyInput) (ErrorCategory, float64) {
	prev := strings.TrimSpace(input.State.LastIncorrectAnswer)
	if prev == "" {
		return "", 0
	}
	if strings.EqualFold(prev, strings.TrimSpace(input.Answer)) {
		return CategoryRepeated, 0.9
	}
	if input.Question != nil && input.Label != "" {
		if extract.MatchOption(prev, input.Question) == input.Label {
			return CategoryRepeated, 0.7
		}
	}
	return "", 0
}
