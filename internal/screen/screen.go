// Package screen defines what the router needs from a TUI screen.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/tutorcore/internal/ui/layout"
)

// Screen is one page of the TUI. View renders only the area between the
// header and footer bars.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider reports the concept being taught and the student's
// correct-answer streak for the header.
type StatusProvider interface {
	Status() (concept string, streak int)
}
