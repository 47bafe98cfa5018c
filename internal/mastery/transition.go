package mastery

import (
	"fmt"
	"strings"
)

// DefaultErrorType is recorded for an incorrect answer with no finer
// classification.
const DefaultErrorType = "incorrect-answer"

// Outcome is what the orchestration layer observed in one turn.
type Outcome struct {
	// Concept is the concept the turn was about; empty keeps the current one.
	Concept string
	// Answered is set when the student answered a pending question.
	Answered bool
	Correct  bool
	// Answer is the student's answer, kept when incorrect.
	Answer    string
	ErrorType string
	// Format is the format of a question asked in this turn, if any.
	Format QuestionFormat
	// Checkpoint is set when this turn served a comprehension checkpoint.
	Checkpoint bool
	// AwaitingReasoning is set when the tutor asked the student to explain.
	AwaitingReasoning bool
}

// Apply returns the state after one turn. s is not modified.
func Apply(s ConversationState, o Outcome) ConversationState {
	n := s.clone()
	n.ExchangeCount++

	if c := strings.TrimSpace(o.Concept); c != "" && !strings.EqualFold(c, n.CurrentConcept) {
		n.CurrentConcept = c
		n.QuestionsOnConcept = 0
		n.ConsecutiveCorrect = 0
		n.ErrorCount = 0
	}

	if o.Answered {
		n.QuestionsOnConcept++
		if o.Correct {
			n.ConsecutiveCorrect++
			n.ErrorCount = 0
			n.LastErrorType = ""
			n.LastIncorrectAnswer = ""
			if n.ConsecutiveCorrect%2 == 0 && n.ScaffoldingLevel > 0 {
				n.ScaffoldingLevel--
			}
		} else {
			n.ConsecutiveCorrect = 0
			n.ErrorCount++
			n.ScaffoldingLevel = min(n.ScaffoldingLevel+1, MaxScaffolding)
			n.LastErrorType = o.ErrorType
			if n.LastErrorType == "" {
				n.LastErrorType = DefaultErrorType
			}
			n.LastIncorrectAnswer = o.Answer
		}
	}

	if o.Format.Valid() && !n.Used(o.Format) {
		n.QuestionTypesUsed = append(n.QuestionTypesUsed, o.Format)
		if len(n.QuestionTypesUsed) == len(Formats) {
			// Rotation complete; start the next one with this format.
			n.QuestionTypesUsed = []QuestionFormat{o.Format}
		}
	}

	if o.Checkpoint {
		n.LastCheckpointExchange = n.ExchangeCount
	}
	n.AwaitingReasoning = o.AwaitingReasoning

	return n.Normalize()
}

// Transition records a notable change between two states for display and
// event logging.
type Transition struct {
	Field   string
	From    string
	To      string
	Trigger string // "correct-streak", "incorrect-answer", "concept-change", "streak"
}

func (t Transition) String() string {
	return fmt.Sprintf("%s: %s -> %s (%s)", t.Field, t.From, t.To, t.Trigger)
}

// Diff lists the notable changes from prev to next.
func Diff(prev, next ConversationState) []Transition {
	var out []Transition
	if !strings.EqualFold(prev.CurrentConcept, next.CurrentConcept) {
		out = append(out, Transition{Field: "concept", From: prev.CurrentConcept, To: next.CurrentConcept, Trigger: "concept-change"})
	}
	if prev.ScaffoldingLevel != next.ScaffoldingLevel {
		trigger := "correct-streak"
		if next.ScaffoldingLevel > prev.ScaffoldingLevel {
			trigger = "incorrect-answer"
		}
		out = append(out, Transition{
			Field:   "scaffolding",
			From:    fmt.Sprint(prev.ScaffoldingLevel),
			To:      fmt.Sprint(next.ScaffoldingLevel),
			Trigger: trigger,
		})
	}
	if from, to := ResolvePhase(prev), ResolvePhase(next); from != to {
		out = append(out, Transition{Field: "phase", From: string(from), To: string(to), Trigger: "streak"})
	}
	return out
}
