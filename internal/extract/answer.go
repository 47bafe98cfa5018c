package extract

import (
	"strconv"
	"strings"
)

// CheckAnswer reports whether a student's message answers q correctly.
// It accepts the option label ("B", "b)", "option B"), the 1-based
// option position, or the option text, compared case-insensitively.
// Option text wins over position when both could apply.
// The matched label is returned, or "" when the message names no option.
func CheckAnswer(message string, q *EmbeddedQuestion) (label string, correct bool) {
	if q == nil {
		return "", false
	}
	label = MatchOption(message, q)
	return label, label != "" && label == q.CorrectAnswer
}

// MatchOption returns the label of the option the message refers to.
func MatchOption(message string, q *EmbeddedQuestion) string {
	msg := strings.TrimSpace(message)
	if msg == "" {
		return ""
	}

	want := normalizeLabel(msg)
	for _, o := range q.Options {
		if normalizeLabel(o.Label) == want {
			return o.Label
		}
	}

	for _, o := range q.Options {
		if strings.EqualFold(strings.TrimSpace(o.Text), msg) {
			return o.Label
		}
	}

	if idx, err := strconv.Atoi(want); err == nil && idx >= 1 && idx <= len(q.Options) {
		return q.Options[idx-1].Label
	}

	// "I think it's B" style replies: a lone standalone label token.
	var found string
	for _, tok := range strings.FieldsFunc(msg, func(r rune) bool {
		return r == ' ' || r == ',' || r == '.' || r == '!' || r == '?' || r == '(' || r == ')' || r == ':'
	}) {
		if len(tok) != 1 {
			continue
		}
		for _, o := range q.Options {
			if len(o.Label) == 1 && tok == o.Label {
				if found != "" && found != o.Label {
					return ""
				}
				found = o.Label
			}
		}
	}
	return found
}
