// Package chat is the interactive tutoring screen.
package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/tutorcore/internal/llm"
	"github.com/abhisek/tutorcore/internal/router"
	"github.com/abhisek/tutorcore/internal/screen"
	summaryscreen "github.com/abhisek/tutorcore/internal/screens/summary"
	"github.com/abhisek/tutorcore/internal/summary"
	"github.com/abhisek/tutorcore/internal/turn"
	"github.com/abhisek/tutorcore/internal/tutor"
	"github.com/abhisek/tutorcore/internal/ui/components"
	"github.com/abhisek/tutorcore/internal/ui/layout"
)

// entry is one line of the visible transcript.
type entry struct {
	student bool
	text    string
	reply   *turn.Reply
}

// ChatScreen implements screen.Screen for a live tutoring session.
type ChatScreen struct {
	ctx        context.Context
	tutor      *tutor.Tutor
	session    *tutor.Session
	summarizer *summary.Summarizer

	input   components.TextInput
	choice  components.MultiChoice
	entries []entry

	waiting bool
	ending  bool
	spin    int
	errMsg  string

	// Cached from the last result; the session is owned by the in-flight
	// turn while waiting.
	concept  string
	streak   int
	scaffold int
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)
var _ screen.StatusProvider = (*ChatScreen)(nil)

// New creates a ChatScreen. summarizer may be nil, in which case ending
// the session quits without a summary.
func New(ctx context.Context, t *tutor.Tutor, s *tutor.Session, summarizer *summary.Summarizer) *ChatScreen {
	return &ChatScreen{
		ctx:        ctx,
		tutor:      t,
		session:    s,
		summarizer: summarizer,
		input:      components.NewTextInput("Ask a question or answer...", 500),
		concept:    s.State.CurrentConcept,
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *ChatScreen) Title() string {
	if c.session.Topic == "" {
		return "Tutor"
	}
	return "Tutor: " + c.session.Topic
}

func (c *ChatScreen) Status() (string, int) {
	return c.concept, c.streak
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	if c.waiting {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	hints := []layout.KeyHint{{Key: "Enter", Description: "Send"}}
	if c.choice.Active() {
		hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Pick option"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+E", Description: "End session"})
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		return c.handleReply(msg)

	case summaryMsg:
		return c.handleSummary(msg)

	case spinnerTickMsg:
		if !c.waiting {
			return c, nil
		}
		c.spin++
		return c, spinnerTick()

	case tea.KeyMsg:
		return c.handleKey(msg)
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *ChatScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if c.waiting {
		return c, nil
	}

	switch msg.String() {
	case "ctrl+e":
		return c.endSession()

	case "enter":
		text := strings.TrimSpace(c.input.Value())
		if text == "" && c.choice.Active() {
			c.choice, _ = c.choice.Update(msg)
			text = c.choice.Label()
		}
		if text == "" {
			return c, nil
		}
		c.input.Reset()
		return c, c.send(text)

	case "up", "down":
		if c.choice.Active() {
			c.choice, _ = c.choice.Update(msg)
			return c, nil
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// send starts a tutor turn in the background.
func (c *ChatScreen) send(text string) tea.Cmd {
	c.entries = append(c.entries, entry{student: true, text: text})
	c.waiting = true
	c.errMsg = ""

	ctx, t, s := c.ctx, c.tutor, c.session
	respond := func() tea.Msg {
		res, err := t.Respond(ctx, s, text)
		return replyMsg{Result: res, Err: err}
	}
	return tea.Batch(respond, spinnerTick())
}

func (c *ChatScreen) handleReply(msg replyMsg) (screen.Screen, tea.Cmd) {
	c.waiting = false
	if msg.Err != nil {
		c.errMsg = friendlyError(msg.Err)
		return c, nil
	}

	res := msg.Result
	reply := res.Reply
	c.entries = append(c.entries, entry{text: reply.Response, reply: &reply})
	if reply.EmbeddedQuestion != nil {
		c.choice = components.NewMultiChoice(reply.EmbeddedQuestion)
	} else if res.Answered {
		c.choice = components.MultiChoice{}
	}

	c.concept = c.session.State.CurrentConcept
	c.streak = c.session.State.ConsecutiveCorrect
	c.scaffold = c.session.State.ScaffoldingLevel
	return c, nil
}

func (c *ChatScreen) endSession() (screen.Screen, tea.Cmd) {
	if c.summarizer == nil || len(c.session.History) == 0 {
		return c, tea.Quit
	}
	c.waiting = true
	c.ending = true

	ctx, sum, s := c.ctx, c.summarizer, c.session
	generate := func() tea.Msg {
		out, err := sum.Generate(ctx, summary.Input{
			Topic:      s.Topic,
			Transcript: s.Transcript(),
			State:      s.State,
		})
		return summaryMsg{Summary: out, Err: err}
	}
	return c, tea.Batch(generate, spinnerTick())
}

func (c *ChatScreen) handleSummary(msg summaryMsg) (screen.Screen, tea.Cmd) {
	c.waiting = false
	c.ending = false
	if msg.Err != nil {
		c.errMsg = friendlyError(msg.Err)
		return c, nil
	}
	next := summaryscreen.New(msg.Summary, c.session.Topic, c.session.State)
	return c, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func friendlyError(err error) string {
	if errors.Is(err, context.Canceled) {
		return "Request cancelled."
	}
	var refused *llm.ErrRefused
	if errors.As(err, &refused) {
		return "The tutor could not reply to that. Try rephrasing."
	}
	var rl *llm.ErrRateLimit
	if errors.As(err, &rl) {
		return "The tutor could not reply: the model is busy, try again shortly."
	}
	return "The tutor could not reply: " + err.Error()
}
