package mastery

import (
	"fmt"
	"strings"
)

// Phase is a coarse label for where the student is on the current concept.
type Phase string

const (
	PhaseStarting   Phase = "starting"
	PhasePracticing Phase = "practicing"
	PhaseStruggling Phase = "struggling"
	PhaseReady      Phase = "ready"
)

// ResolvePhase maps the counters into the display phase used by prompts and
// the UI.
func ResolvePhase(s ConversationState) Phase {
	switch {
	case MasteryReady(s):
		return PhaseReady
	case s.ErrorCount >= 2 || s.ScaffoldingLevel >= 2:
		return PhaseStruggling
	case s.QuestionsOnConcept == 0:
		return PhaseStarting
	default:
		return PhasePracticing
	}
}

// Summary renders the state and its signals as the block injected into
// the next prompt.
func Summary(s ConversationState) string {
	sig := Derive(s)
	var b strings.Builder

	b.WriteString("Student state:\n")
	concept := s.CurrentConcept
	if concept == "" {
		concept = "(not set)"
	}
	fmt.Fprintf(&b, "- Current concept: %s (%d questions answered)\n", concept, s.QuestionsOnConcept)
	fmt.Fprintf(&b, "- Correct streak: %d, error streak: %d\n", s.ConsecutiveCorrect, s.ErrorCount)
	fmt.Fprintf(&b, "- Scaffolding level: %d of %d\n", s.ScaffoldingLevel, MaxScaffolding)
	fmt.Fprintf(&b, "- Phase: %s\n", sig.Phase)
	fmt.Fprintf(&b, "- Mastery ready: %s\n", yesNo(sig.MasteryReady))
	fmt.Fprintf(&b, "- Checkpoint due: %s (%d exchanges since the last one)\n", yesNo(sig.CheckpointDue), sig.ExchangesSinceCheckpoint)

	if len(sig.UnusedFormats) > 0 {
		names := make([]string, len(sig.UnusedFormats))
		for i, f := range sig.UnusedFormats {
			names[i] = string(f)
		}
		fmt.Fprintf(&b, "- Unused question formats: %s\n", strings.Join(names, ", "))
	}
	if s.LastIncorrectAnswer != "" || s.LastErrorType != "" {
		fmt.Fprintf(&b, "- Last incorrect answer: %q (%s)\n", s.LastIncorrectAnswer, s.LastErrorType)
	}
	if s.AwaitingReasoning {
		b.WriteString("- Waiting for the student to explain their reasoning.\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
