package tutor

import (
	"strings"

	"github.com/abhisek/tutorcore/internal/extract"
	"github.com/abhisek/tutorcore/internal/mastery"
	"github.com/abhisek/tutorcore/internal/turn"
)

// classifyFormat infers the format of the question a reply asked, or ""
// when it asked none.
func classifyFormat(r turn.Reply) mastery.QuestionFormat {
	if q := r.EmbeddedQuestion; q != nil {
		switch {
		case isTrueFalse(q.Options):
			return mastery.FormatTrueFalse
		case r.Chart != nil:
			return mastery.FormatGraphReading
		default:
			return mastery.FormatMultipleChoice
		}
	}

	text := strings.ToLower(r.Response)
	if !strings.Contains(text, "?") {
		return ""
	}
	switch {
	case strings.Contains(text, "___"):
		return mastery.FormatFillInBlank
	case strings.Contains(text, "explain") || strings.Contains(text, "why do you think") || strings.Contains(text, "in your own words"):
		return mastery.FormatExplain
	case r.Chart != nil:
		return mastery.FormatGraphReading
	default:
		return mastery.FormatShortAnswer
	}
}

func isTrueFalse(opts []extract.Option) bool {
	if len(opts) != 2 {
		return false
	}
	a, b := strings.ToLower(strings.TrimSpace(opts[0].Text)), strings.ToLower(strings.TrimSpace(opts[1].Text))
	return (a == "true" && b == "false") || (a == "false" && b == "true")
}
