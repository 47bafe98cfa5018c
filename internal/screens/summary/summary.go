// Package summary is the end-of-session screen.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tutorcore/internal/mastery"
	"github.com/abhisek/tutorcore/internal/screen"
	"github.com/abhisek/tutorcore/internal/summary"
	"github.com/abhisek/tutorcore/internal/ui/layout"
	"github.com/abhisek/tutorcore/internal/ui/theme"
)

// SummaryScreen displays the session summary.
type SummaryScreen struct {
	summary *summary.Summary
	topic   string
	state   mastery.ConversationState
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.StatusProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(sum *summary.Summary, topic string, state mastery.ConversationState) *SummaryScreen {
	return &SummaryScreen{summary: sum, topic: topic, state: state}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) Status() (string, int) {
	return s.state.CurrentConcept, s.state.ConsecutiveCorrect
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Finish"},
		{Key: "Esc", Description: "Finish"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}
	inner := max(min(width-8, 72), 20)
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var b strings.Builder
	title := "Session complete!"
	if s.topic != "" {
		title = fmt.Sprintf("Session complete: %s", s.topic)
	}
	b.WriteString(center(theme.Title.Render(title)))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Exchanges: %d    Streak: %d    Phase: %s",
		s.state.ExchangeCount, s.state.ConsecutiveCorrect, mastery.ResolvePhase(s.state))
	b.WriteString(center(theme.Subtitle.Render(stats)))
	b.WriteString("\n\n")

	b.WriteString(center(lipgloss.NewStyle().Width(inner).Foreground(theme.Text).Render(sum.Summary)))
	b.WriteString("\n")

	section := func(name string, items []string, style lipgloss.Style) {
		if len(items) == 0 {
			return
		}
		b.WriteString("\n")
		b.WriteString(center(theme.Subtitle.Render(name)))
		b.WriteString("\n")
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", inner))))
		b.WriteString("\n")
		for _, it := range items {
			b.WriteString(center(style.Width(inner).Render("- " + it)))
			b.WriteString("\n")
		}
	}
	section("Strengths", sum.Strengths, lipgloss.NewStyle().Foreground(theme.Success))
	section("Next time", sum.Priorities, lipgloss.NewStyle().Foreground(theme.Accent))

	return b.String()
}
