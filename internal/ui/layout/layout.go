// Package layout frames screen content between a status header and a key
// hint footer.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/tutorcore/internal/ui/theme"
)

// Below this size the frame is replaced by a resize prompt.
const (
	MinWidth  = 60
	MinHeight = 20
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal cannot fit the frame.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Terminal too small (%dx%d).\n\nResize to at least %dx%d.",
			width, height, MinWidth, MinHeight))
}

// RenderHeader shows the app name, the screen title centred, and the
// current concept with the correct-answer streak on the right.
func RenderHeader(title, concept string, streak int, width int) string {
	if concept == "" {
		concept = "-"
	}
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(" tutorcore")
	mid := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	right := theme.ConceptTag.Render(concept) + "  " +
		lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf("streak %d", streak))

	inner := max(width-4, 0)
	lw, mw, rw := lipgloss.Width(left), lipgloss.Width(mid), lipgloss.Width(right)
	gapL := max((inner-mw)/2-lw, 1)
	gapR := max(inner-lw-gapL-mw-rw, 1)

	line := left + strings.Repeat(" ", gapL) + mid + strings.Repeat(" ", gapR) + right
	return theme.Bar.Width(width).Render(line)
}

// RenderFooter lists key hints.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString(" ")
	for i, h := range hints {
		if i > 0 {
			b.WriteString("   ")
		}
		b.WriteString(keyStyle.Render(h.Key))
		b.WriteString(" ")
		b.WriteString(descStyle.Render(h.Description))
	}
	return theme.Bar.Width(width).Render(b.String())
}

// RenderFrame stacks header, content and footer, padding the content to
// fill whatever height the bars leave.
func RenderFrame(header, content, footer string, width, height int) string {
	body := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.NewStyle().Width(width).Height(body).Render(content),
		footer,
	)
}
