package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/tutorcore/internal/ui/theme"
)

// minBarCells keeps the meter visible on narrow terminals.
const minBarCells = 4

// ProgressBar is a labelled horizontal meter. The chat sidebar uses two:
// the correct-answer streak toward mastery and the scaffolding level.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{Label: label, Percent: percent, ShowPercent: showPercent, Width: width}
}

func (p ProgressBar) View() string {
	var label, suffix string
	if p.Label != "" {
		label = lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}
	pct := min(max(p.Percent, 0), 1)
	if p.ShowPercent {
		suffix = lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("  %3d%%", int(pct*100)))
	}

	cells := max(p.Width-lipgloss.Width(label)-lipgloss.Width(suffix), minBarCells)
	lit := int(float64(cells) * pct)

	return label +
		theme.ProgressFilled.Render(strings.Repeat(" ", lit)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", cells-lit)) +
		suffix
}

// Ratio returns n/of clamped to [0, 1].
func Ratio(n, of int) float64 {
	if of <= 0 {
		return 0
	}
	return min(max(float64(n)/float64(of), 0), 1)
}
