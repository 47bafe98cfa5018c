// Package diagnosis classifies a student's incorrect answer so the next
// prompt can address the kind of mistake.
package diagnosis

import (
	"time"

	"github.com/abhisek/tutorcore/internal/extract"
	"github.com/abhisek/tutorcore/internal/mastery"
)

// ErrorCategory classifies a wrong answer. Values double as
// mastery.ConversationState.LastErrorType.
type ErrorCategory string

const (
	CategoryRepeated     ErrorCategory = "repeated-error"
	CategorySpeedRush    ErrorCategory = "speed-rush"
	CategoryCareless     ErrorCategory = "careless"
	CategoryUnclassified ErrorCategory = mastery.DefaultErrorType
)

// ClassifyInput holds the context for classification.
type ClassifyInput struct {
	Question *extract.EmbeddedQuestion
	// Answer is the student's raw reply; Label the option it resolved to.
	Answer string
	Label  string
	// ResponseTime is how long the question was pending. Zero means unknown.
	ResponseTime time.Duration
	// State is the pacing state before this answer is applied.
	State mastery.ConversationState
}

// Result is the output of classifying a wrong answer.
type Result struct {
	Category       ErrorCategory
	Confidence     float64 // 0.0–1.0
	ClassifierName string  // empty when no rule matched
}
