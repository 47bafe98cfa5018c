package chat

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/tutorcore/internal/mastery"
	"github.com/abhisek/tutorcore/internal/ui/components"
	"github.com/abhisek/tutorcore/internal/ui/render"
	"github.com/abhisek/tutorcore/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (c *ChatScreen) View(width, height int) string {
	inner := max(width-4, 20)

	var bottom strings.Builder
	if c.choice.Active() {
		bottom.WriteString(c.choice.View())
		bottom.WriteString("\n")
	}
	bottom.WriteString(c.statusLine(inner))
	bottom.WriteString("\n")
	switch {
	case c.waiting && c.ending:
		bottom.WriteString(theme.Hint.Render(spinnerFrames[c.spin%len(spinnerFrames)] + " Summarizing the session..."))
	case c.waiting:
		bottom.WriteString(theme.Hint.Render(spinnerFrames[c.spin%len(spinnerFrames)] + " Thinking..."))
	default:
		bottom.WriteString(c.input.View())
	}
	if c.errMsg != "" {
		bottom.WriteString("\n")
		bottom.WriteString(theme.Incorrect.Render(c.errMsg))
	}

	footer := bottom.String()
	avail := height - lipgloss.Height(footer) - 1
	transcript := tailLines(c.renderTranscript(inner), avail)

	return lipgloss.NewStyle().Padding(0, 2).Render(transcript + "\n" + footer)
}

func (c *ChatScreen) renderTranscript(width int) string {
	if len(c.entries) == 0 {
		return theme.Hint.Render("Say hello, or ask about " + orDefault(c.session.Topic, "anything") + ".")
	}
	var b strings.Builder
	for i, e := range c.entries {
		if i > 0 {
			b.WriteString("\n\n")
		}
		if e.student {
			b.WriteString(theme.StudentLabel.Render("You: "))
			b.WriteString(lipgloss.NewStyle().Width(width).Render(e.text))
			continue
		}
		b.WriteString(theme.TutorLabel.Render("Tutor:"))
		b.WriteString("\n")
		r := *e.reply
		// The pending question is drawn by the selector below.
		r.EmbeddedQuestion = nil
		b.WriteString(render.Reply(r, width))
	}
	return b.String()
}

func (c *ChatScreen) statusLine(width int) string {
	half := max(width/2-2, 10)
	streak := components.NewProgressBar("Streak", components.Ratio(c.streak, mastery.MasteryStreak), false, half)
	support := components.NewProgressBar("Support", components.Ratio(c.scaffold, mastery.MaxScaffolding), false, half)
	return streak.View() + "  " + support.View()
}

// tailLines keeps the last n lines of s.
func tailLines(s string, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[len(lines)-n:], "\n")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
