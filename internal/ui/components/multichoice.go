package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tutorcore/internal/extract"
	"github.com/abhisek/tutorcore/internal/ui/theme"
)

// MultiChoice shows an embedded question and lets the student pick an
// option with the arrow keys.
type MultiChoice struct {
	Question  *extract.EmbeddedQuestion
	Selected  int
	Submitted bool
}

// NewMultiChoice creates a selector for q.
func NewMultiChoice(q *extract.EmbeddedQuestion) MultiChoice {
	return MultiChoice{Question: q}
}

// Active reports whether there is a question to answer.
func (m MultiChoice) Active() bool {
	return m.Question != nil && !m.Submitted
}

// Update handles keyboard navigation. Enter submits the highlighted
// option; number and letter keys select directly.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if !m.Active() {
		return m, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down":
		if m.Selected < len(m.Question.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
	default:
		for i, o := range m.Question.Options {
			if strings.EqualFold(key, o.Label) || key == fmt.Sprint(i+1) {
				m.Selected = i
			}
		}
	}
	return m, nil
}

// Label returns the label of the highlighted option.
func (m MultiChoice) Label() string {
	if m.Question == nil || len(m.Question.Options) == 0 {
		return ""
	}
	return m.Question.Options[m.Selected].Label
}

// View renders the question and its options.
func (m MultiChoice) View() string {
	if m.Question == nil {
		return ""
	}
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question.Text) + "\n\n"

	for i, opt := range m.Question.Options {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, opt.Label, opt.Text)

		switch {
		case m.Submitted && opt.Label == m.Question.CorrectAnswer:
			s += theme.Correct.Render(line) + "\n"
		case m.Submitted && i == m.Selected:
			s += theme.Incorrect.Render(line) + "\n"
		case m.Submitted:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == m.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}
