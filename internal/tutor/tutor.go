// Package tutor runs a tutoring conversation: it grades the student's
// answer, prompts the model with the session state, interprets the reply
// and advances the state.
package tutor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/tutorcore/internal/concepts"
	"github.com/abhisek/tutorcore/internal/diagnosis"
	"github.com/abhisek/tutorcore/internal/extract"
	"github.com/abhisek/tutorcore/internal/llm"
	"github.com/abhisek/tutorcore/internal/logger"
	"github.com/abhisek/tutorcore/internal/mastery"
	"github.com/abhisek/tutorcore/internal/store"
	"github.com/abhisek/tutorcore/internal/turn"
)

// Purpose labels tutor completions in the event log.
const Purpose = "tutor-turn"

// ErrEmptyMessage is returned for a blank student message.
var ErrEmptyMessage = errors.New("empty student message")

// TurnRecorder persists turn outcomes.
type TurnRecorder interface {
	AppendTurn(ctx context.Context, t store.TurnEventData) error
}

// Result is the outcome of one Respond call.
type Result struct {
	Reply turn.Reply

	// Answered is set when the message answered the pending question.
	Answered bool
	Correct  bool
	// Label is the option the student picked.
	Label string
	// Diagnosis classifies an incorrect answer; nil otherwise.
	Diagnosis *diagnosis.Result

	Format      mastery.QuestionFormat
	Signals     mastery.Signals
	Transitions []mastery.Transition
}

// Tutor drives sessions against a completion provider.
type Tutor struct {
	provider    llm.Provider
	processor   *turn.Processor
	turns       TurnRecorder
	classifiers []diagnosis.Classifier
	now         func() time.Time
	cfg         Config
	log         *logger.Logger
}

// Option configures a Tutor.
type Option func(*Tutor)

// WithProcessor replaces the default reply pipeline.
func WithProcessor(p *turn.Processor) Option {
	return func(t *Tutor) { t.processor = p }
}

// WithTurnRecorder records every completed turn.
func WithTurnRecorder(r TurnRecorder) Option {
	return func(t *Tutor) { t.turns = r }
}

// WithClassifiers replaces the rule chain used to classify wrong answers.
func WithClassifiers(c ...diagnosis.Classifier) Option {
	return func(t *Tutor) { t.classifiers = c }
}

// WithClock sets the time source used to measure response times.
func WithClock(now func() time.Time) Option {
	return func(t *Tutor) { t.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(t *Tutor) {
		if l != nil {
			t.log = l
		}
	}
}

// New returns a Tutor calling provider.
func New(provider llm.Provider, cfg Config, opts ...Option) *Tutor {
	t := &Tutor{
		provider:    provider,
		processor:   turn.New(),
		classifiers: diagnosis.DefaultClassifiers(),
		now:         time.Now,
		cfg:         cfg,
		log:         logger.Nop(),
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Respond runs one turn of s for the student's message. On a provider
// error the session is left unchanged.
func (t *Tutor) Respond(ctx context.Context, s *Session, message string) (*Result, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}
	ctx = llm.WithSession(llm.WithPurpose(ctx, Purpose), s.ID)

	var label string
	var correct bool
	var waited time.Duration
	if s.Pending != nil {
		label, correct = extract.CheckAnswer(message, s.Pending)
		if !s.PendingAt.IsZero() {
			waited = t.now().Sub(s.PendingAt)
		}
	}
	answered := label != ""
	checkpoint := mastery.CheckpointDue(s.State)

	msgs := make([]llm.Message, 0, len(s.History)+2)
	msgs = append(msgs, s.window(t.cfg.HistoryWindow)...)
	if note := gradingNote(s.Pending, label, correct); note != "" {
		msgs = append(msgs, llm.Message{Role: llm.RoleSystem, Content: note})
	}
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: message})

	resp, err := t.provider.Generate(ctx, llm.Request{
		System:      buildSystemPrompt(s.Topic, s.State),
		Messages:    msgs,
		MaxTokens:   t.cfg.MaxTokens,
		Temperature: t.cfg.Temperature,
		Model:       t.cfg.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("tutor turn: %w", err)
	}

	reply := t.processor.ProcessTurn(ctx, resp.Text(), s.Topic)
	format := classifyFormat(reply)

	outcome := mastery.Outcome{
		Concept:           t.nextConcept(s, reply),
		Answered:          answered,
		Correct:           correct,
		Format:            format,
		Checkpoint:        checkpoint,
		AwaitingReasoning: format == mastery.FormatExplain,
	}
	var diag *diagnosis.Result
	if answered && !correct {
		d := diagnosis.Classify(t.classifiers, &diagnosis.ClassifyInput{
			Question:     s.Pending,
			Answer:       message,
			Label:        label,
			ResponseTime: waited,
			State:        s.State,
		})
		diag = &d
		outcome.Answer = message
		outcome.ErrorType = string(d.Category)
	}

	prev := s.State
	s.State = mastery.Apply(prev, outcome)
	s.History = append(s.History,
		llm.Message{Role: llm.RoleUser, Content: message},
		llm.Message{Role: llm.RoleAssistant, Content: assistantTurn(reply)},
	)
	if reply.EmbeddedQuestion != nil {
		s.Pending = reply.EmbeddedQuestion
		s.PendingAt = t.now()
	} else if answered {
		s.Pending = nil
		s.PendingAt = time.Time{}
	}

	res := &Result{
		Reply:       reply,
		Answered:    answered,
		Correct:     correct,
		Label:       label,
		Diagnosis:   diag,
		Format:      format,
		Signals:     mastery.Derive(s.State),
		Transitions: mastery.Diff(prev, s.State),
	}
	if diag != nil {
		t.log.Debug("wrong answer classified", "session_id", s.ID, "category", diag.Category, "rule", diag.ClassifierName)
	}
	for _, tr := range res.Transitions {
		t.log.Debug("state transition", "session_id", s.ID, "change", tr.String())
	}
	t.record(ctx, s, res)
	return res, nil
}

// nextConcept keeps the current concept until the student is ready to
// advance; then the first concept of a new question, other than the one
// already covered, becomes current.
func (t *Tutor) nextConcept(s *Session, reply turn.Reply) string {
	if !mastery.MasteryReady(s.State) || reply.EmbeddedQuestion == nil {
		return ""
	}
	q := reply.EmbeddedQuestion
	text := q.Text
	for _, o := range q.Options {
		text += " " + o.Text
	}
	for _, tag := range concepts.Extract(text, "") {
		if !strings.EqualFold(string(tag), s.State.CurrentConcept) {
			return string(tag)
		}
	}
	return ""
}

func (t *Tutor) record(ctx context.Context, s *Session, res *Result) {
	if t.turns == nil {
		return
	}
	ev := store.TurnEventData{
		SessionID:        s.ID,
		Topic:            s.Topic,
		Exchange:         s.State.ExchangeCount,
		Answered:         res.Answered,
		Correct:          res.Correct,
		Question:         res.Reply.EmbeddedQuestion != nil,
		ScaffoldingLevel: s.State.ScaffoldingLevel,
	}
	if res.Reply.Chart != nil {
		ev.ChartKind = string(res.Reply.Chart.Kind)
	}
	for _, c := range res.Reply.Concepts {
		ev.Concepts = append(ev.Concepts, string(c))
	}
	if err := t.turns.AppendTurn(ctx, ev); err != nil {
		t.log.Warn("failed to record turn", "session_id", s.ID, "error", err)
	}
}

// assistantTurn is what the model sees of its own earlier reply: the
// cleaned prose plus the question it asked, so follow-ups stay grounded.
func assistantTurn(r turn.Reply) string {
	if r.EmbeddedQuestion == nil {
		return r.Response
	}
	var b strings.Builder
	b.WriteString(r.Response)
	b.WriteString("\n\n[question] ")
	b.WriteString(r.EmbeddedQuestion.Text)
	for _, o := range r.EmbeddedQuestion.Options {
		fmt.Fprintf(&b, "\n%s) %s", o.Label, o.Text)
	}
	return strings.TrimLeft(b.String(), "\n")
}
