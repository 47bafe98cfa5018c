// Package render formats a processed reply for a terminal.
package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/tutorcore/internal/turn"
	"github.com/abhisek/tutorcore/internal/ui/theme"
)

// Reply renders r with its question, chart and concept tags, wrapped to
// width columns. A width of 0 disables wrapping.
func Reply(r turn.Reply, width int) string {
	body := lipgloss.NewStyle()
	if width > 0 {
		body = body.Width(width)
	}

	parts := []string{body.Render(theme.Body.Render(r.Response))}

	if r.Chart != nil {
		parts = append(parts, theme.ChartFrame.Render(Plot(r.Chart)))
	}

	if q := r.EmbeddedQuestion; q != nil {
		var b strings.Builder
		b.WriteString(theme.Selected.Render(q.Text))
		for _, o := range q.Options {
			fmt.Fprintf(&b, "\n  %s) %s", o.Label, o.Text)
		}
		parts = append(parts, b.String())
	}

	if len(r.Concepts) > 0 {
		tags := make([]string, len(r.Concepts))
		for i, c := range r.Concepts {
			tags[i] = "#" + strings.ReplaceAll(string(c), " ", "-")
		}
		parts = append(parts, theme.ConceptTag.Render(strings.Join(tags, " ")))
	}
	return strings.Join(parts, "\n\n")
}
