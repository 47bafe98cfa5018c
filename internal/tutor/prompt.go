package tutor

import (
	"fmt"
	"strings"

	"github.com/abhisek/tutorcore/internal/chart"
	"github.com/abhisek/tutorcore/internal/extract"
	"github.com/abhisek/tutorcore/internal/mastery"
)

const systemPromptHeader = `You are a patient, encouraging tutor. Explain one idea at a time, check understanding often, and keep replies short.

When you want the student to practice, end your reply with exactly one multiple-choice question in this form:
<question>{"text": "...", "options": [{"label": "A", "text": "..."}, {"label": "B", "text": "..."}], "correctAnswer": "A", "explanation": "..."}</question>

When a picture would help, add one chart block. Never describe a graph or diagram you did not attach.
<chart>{"kind": "...", ...}</chart>`

func buildSystemPrompt(topic string, state mastery.ConversationState) string {
	var b strings.Builder
	b.WriteString(systemPromptHeader)

	kinds := chart.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	b.WriteString(fmt.Sprintf("\nSupported chart kinds: %s.\n", strings.Join(names, ", ")))

	if topic != "" {
		b.WriteString(fmt.Sprintf("\nSession topic: %s\n", topic))
	}
	b.WriteString("\n")
	b.WriteString(mastery.Summary(state))
	b.WriteString("\n")

	sig := mastery.Derive(state)
	b.WriteString("\nInstructions for this turn:\n")
	switch {
	case sig.MasteryReady:
		b.WriteString("- The student has shown mastery. Offer to move on to the next related concept.\n")
	case sig.Phase == mastery.PhaseStruggling:
		b.WriteString("- The student is struggling. Break the idea into smaller steps and give a worked hint before any new question.\n")
	}
	if sig.CheckpointDue {
		b.WriteString("- Ask a short comprehension checkpoint: have the student restate the idea in their own words.\n")
	}
	if len(sig.UnusedFormats) > 0 && len(sig.UnusedFormats) < len(mastery.Formats) {
		b.WriteString(fmt.Sprintf("- Prefer a question format not used yet: %s.\n", sig.UnusedFormats[0]))
	}
	if state.ScaffoldingLevel > 0 {
		b.WriteString(fmt.Sprintf("- Scaffolding level %d: give more support than usual.\n", state.ScaffoldingLevel))
	}
	return strings.TrimRight(b.String(), "\n")
}

// gradingNote tells the model how the student's answer to the pending
// question was graded, so it never has to re-grade it.
func gradingNote(q *extract.EmbeddedQuestion, label string, correct bool) string {
	if q == nil || label == "" {
		return ""
	}
	picked := label
	if o := q.Option(label); o != nil {
		picked = fmt.Sprintf("%s (%s)", label, o.Text)
	}
	if correct {
		return fmt.Sprintf("The student answered %s to %q. That is correct.", picked, q.Text)
	}
	right := q.CorrectAnswer
	if o := q.Option(right); o != nil {
		right = fmt.Sprintf("%s (%s)", right, o.Text)
	}
	return fmt.Sprintf("The student answered %s to %q. That is incorrect; the correct answer is %s.", picked, q.Text, right)
}
