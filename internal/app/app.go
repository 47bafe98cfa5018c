// Package app hosts the interactive tutoring program.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tutorcore/internal/router"
	"github.com/abhisek/tutorcore/internal/screen"
	"github.com/abhisek/tutorcore/internal/screens/chat"
	"github.com/abhisek/tutorcore/internal/summary"
	"github.com/abhisek/tutorcore/internal/tutor"
	"github.com/abhisek/tutorcore/internal/ui/layout"
)

// Options holds the dependencies of a chat program.
type Options struct {
	Tutor      *tutor.Tutor
	Session    *tutor.Session
	Summarizer *summary.Summarizer
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates an AppModel showing the chat screen.
func newAppModel(ctx context.Context, opts Options) AppModel {
	return newAppModelWith(chat.New(ctx, opts.Tutor, opts.Session, opts.Summarizer))
}

func newAppModelWith(initial screen.Screen) AppModel {
	return AppModel{router: router.New(initial)}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render lays out the header, active screen and footer for the current
// window size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, concept, streak := "", "", 0
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			concept, streak = sp.Status()
		}
	}
	header := layout.RenderHeader(title, concept, streak, m.width)

	footerHints := []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kp.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until the student quits.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(newAppModel(ctx, opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
