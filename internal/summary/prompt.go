package summary

import (
	"fmt"
	"strings"

	"github.com/abhisek/tutorcore/internal/mastery"
)

const summarySystemPrompt = `You are summarizing a tutoring session for the student and their teacher. Be specific and factual, and name concepts rather than praising effort.`

func buildSummaryUserMessage(in Input, maxChars int) string {
	var b strings.Builder

	if in.Topic != "" {
		b.WriteString(fmt.Sprintf("Topic: %s\n", in.Topic))
	}
	b.WriteString(fmt.Sprintf("Exchanges: %d\n", in.State.ExchangeCount))
	b.WriteString(fmt.Sprintf("Final phase: %s\n", mastery.ResolvePhase(in.State)))
	if in.State.LastIncorrectAnswer != "" {
		b.WriteString(fmt.Sprintf("Last incorrect answer: %s\n", in.State.LastIncorrectAnswer))
	}

	b.WriteString("\nTranscript:\n")
	b.WriteString(tail(in.Transcript, maxChars))

	b.WriteString(`

Instructions:
1. Summarize the session in 3-5 sentences.
2. List what the student did well.
3. List what to practice next, most important first.
4. Use plain text. No markdown.`)

	return b.String()
}

// tail keeps the last whole lines of s that fit in max bytes.
func tail(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := s[len(s)-max:]
	if i := strings.IndexByte(cut, '\n'); i >= 0 && i < len(cut)-1 {
		cut = cut[i+1:]
	}
	return cut
}
