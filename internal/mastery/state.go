// Package mastery tracks per-session pacing state and derives the signals
// the next prompt is built from.
package mastery

import "slices"

// QuestionFormat is one of the rotated practice-question formats.
type QuestionFormat string

const (
	FormatMultipleChoice QuestionFormat = "multiple-choice"
	FormatShortAnswer    QuestionFormat = "short-answer"
	FormatTrueFalse      QuestionFormat = "true-false"
	FormatFillInBlank    QuestionFormat = "fill-in-the-blank"
	FormatExplain        QuestionFormat = "explain-reasoning"
	FormatGraphReading   QuestionFormat = "graph-reading"
)

// Formats lists every question format in rotation order.
var Formats = []QuestionFormat{
	FormatMultipleChoice,
	FormatShortAnswer,
	FormatTrueFalse,
	FormatFillInBlank,
	FormatExplain,
	FormatGraphReading,
}

// Valid reports whether f is a known format.
func (f QuestionFormat) Valid() bool {
	return slices.Contains(Formats, f)
}

// MaxScaffolding is the highest scaffolding level.
const MaxScaffolding = 3

// ConversationState is the pacing state of one tutoring session. The zero
// value is the state at session start. It is a value type: Apply returns a
// new state and never modifies its argument.
type ConversationState struct {
	ConsecutiveCorrect     int              `json:"consecutiveCorrect"`
	ErrorCount             int              `json:"errorCount"`
	ScaffoldingLevel       int              `json:"scaffoldingLevel"`
	QuestionTypesUsed      []QuestionFormat `json:"questionTypesUsed"`
	ExchangeCount          int              `json:"exchangeCount"`
	LastCheckpointExchange int              `json:"lastCheckpointExchange"`
	CurrentConcept         string           `json:"currentConcept"`
	QuestionsOnConcept     int              `json:"questionsOnConcept"`
	LastErrorType          string           `json:"lastErrorType,omitempty"`
	AwaitingReasoning      bool             `json:"awaitingReasoning"`
	LastIncorrectAnswer    string           `json:"lastIncorrectAnswer,omitempty"`
}

// Used reports whether format f has been asked in the current rotation.
func (s ConversationState) Used(f QuestionFormat) bool {
	return slices.Contains(s.QuestionTypesUsed, f)
}

// Normalize clamps counters into range and reduces QuestionTypesUsed to a
// set of known formats in rotation order. Use it on state decoded from
// untrusted input.
func (s ConversationState) Normalize() ConversationState {
	s.ConsecutiveCorrect = max(s.ConsecutiveCorrect, 0)
	s.ErrorCount = max(s.ErrorCount, 0)
	s.ScaffoldingLevel = min(max(s.ScaffoldingLevel, 0), MaxScaffolding)
	s.ExchangeCount = max(s.ExchangeCount, 0)
	s.LastCheckpointExchange = min(max(s.LastCheckpointExchange, 0), s.ExchangeCount)
	s.QuestionsOnConcept = max(s.QuestionsOnConcept, 0)

	var used []QuestionFormat
	for _, f := range Formats {
		if slices.Contains(s.QuestionTypesUsed, f) {
			used = append(used, f)
		}
	}
	s.QuestionTypesUsed = used
	return s
}

func (s ConversationState) clone() ConversationState {
	s.QuestionTypesUsed = slices.Clone(s.QuestionTypesUsed)
	return s
}
