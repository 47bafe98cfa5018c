// Package theme holds the palette and shared lipgloss styles for the
// tutoring TUI and the CLI's rendered output.
package theme

import "charm.land/lipgloss/v2"

var (
	Primary   = lipgloss.Color("#7C83FD")
	Secondary = lipgloss.Color("#2EC4B6")
	Accent    = lipgloss.Color("#FFB703")
	Success   = lipgloss.Color("#52B788")
	Error     = lipgloss.Color("#E5536E")
	Text      = lipgloss.Color("#EDF2F4")
	TextDim   = lipgloss.Color("#8D99AE")
	BgCard    = lipgloss.Color("#22263A")
	Border    = lipgloss.Color("#3D4260")
)

var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(Primary).Align(lipgloss.Center)
	Subtitle = lipgloss.NewStyle().Foreground(TextDim).Align(lipgloss.Center)
	Body     = lipgloss.NewStyle().Foreground(Text)
	Hint     = lipgloss.NewStyle().Foreground(TextDim).Italic(true)
)

// Answer choices and grading.
var (
	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)
	Correct    = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect  = lipgloss.NewStyle().Foreground(Error).Bold(true)
)

// Transcript.
var (
	StudentLabel = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	TutorLabel   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	ConceptTag   = lipgloss.NewStyle().Foreground(Accent)
	ChartFrame   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)

	ProgressFilled = lipgloss.NewStyle().Background(Secondary)
	ProgressEmpty  = lipgloss.NewStyle().Background(Border)
)

// Bar is the bordered strip used for the header and footer.
var Bar = lipgloss.NewStyle().
	Background(BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border)
