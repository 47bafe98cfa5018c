// Package turn interprets one raw model reply: it repairs the text, pulls
// out the embedded question and chart, drops dangling visual references,
// and tags the concepts the reply covers.
package turn

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/abhisek/tutorcore/internal/chart"
	"github.com/abhisek/tutorcore/internal/concepts"
	"github.com/abhisek/tutorcore/internal/extract"
	"github.com/abhisek/tutorcore/internal/logger"
	"github.com/abhisek/tutorcore/internal/sanitize"
	"github.com/abhisek/tutorcore/internal/visualref"
)

const tracerName = "github.com/abhisek/tutorcore/internal/turn"

// Reply is the structured result of one turn.
type Reply struct {
	Response         string                    `json:"response"`
	EmbeddedQuestion *extract.EmbeddedQuestion `json:"embeddedQuestion"`
	Chart            *chart.Series             `json:"chart"`
	Concepts         []concepts.Tag            `json:"concepts"`
}

// Processor runs the reply pipeline. It holds no per-turn state and is safe
// for concurrent use.
type Processor struct {
	sanitizer  *sanitize.Sanitizer
	validators []extract.Validator
	log        *logger.Logger
	tracer     trace.Tracer
}

// Option configures a Processor.
type Option func(*Processor)

// WithDiagnostics sends sanitizer repair diagnostics to sink.
func WithDiagnostics(sink sanitize.DiagnosticSink) Option {
	return func(p *Processor) { p.sanitizer = sanitize.New(sink) }
}

// WithValidators replaces the embedded-question validator chain.
func WithValidators(v ...extract.Validator) Option {
	return func(p *Processor) { p.validators = v }
}

// WithLogger sets the logger for extraction warnings and stage traces.
func WithLogger(l *logger.Logger) Option {
	return func(p *Processor) {
		if l != nil {
			p.log = l
		}
	}
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(p *Processor) { p.tracer = t }
}

// New returns a Processor with the default validators, no diagnostics
// sink, and a no-op logger unless overridden.
func New(opts ...Option) *Processor {
	p := &Processor{
		sanitizer:  sanitize.New(nil),
		validators: extract.DefaultValidators(),
		log:        logger.Nop(),
		tracer:     otel.Tracer(tracerName),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

var defaultProcessor = New()

// ProcessTurn runs the pipeline with default dependencies.
func ProcessTurn(rawText, sessionTopic string) Reply {
	return defaultProcessor.ProcessTurn(context.Background(), rawText, sessionTopic)
}

// ProcessTurn interprets rawText. It never fails: any extraction problem
// drops the structured extra and keeps the prose.
func (p *Processor) ProcessTurn(ctx context.Context, rawText, sessionTopic string) Reply {
	ctx, span := p.tracer.Start(ctx, "turn.ProcessTurn")
	defer span.End()
	span.SetAttributes(
		attribute.Int("turn.raw_len", len(rawText)),
		attribute.String("turn.topic", sessionTopic),
	)

	text := p.sanitizer.Sanitize(ctx, rawText, "pre")

	text, question := p.question(ctx, text)
	text, series := p.chart(ctx, text)

	text = extract.Tidy(text, extract.TagQuestion)
	text = extract.Tidy(text, extract.TagChart)

	if series == nil && visualref.HasPromise(text) {
		span.AddEvent("visual promise removed")
		p.log.Debug("removing visual promise without chart")
	}
	text = visualref.Clean(text, series != nil)
	text = p.sanitizer.Sanitize(ctx, text, "post")

	tags := concepts.Extract(text, sessionTopic)
	if tags == nil {
		tags = []concepts.Tag{}
	}

	span.SetAttributes(
		attribute.Bool("turn.question", question != nil),
		attribute.Bool("turn.chart", series != nil),
		attribute.Int("turn.concepts", len(tags)),
	)
	return Reply{
		Response:         text,
		EmbeddedQuestion: question,
		Chart:            series,
		Concepts:         tags,
	}
}

func (p *Processor) question(ctx context.Context, text string) (string, *extract.EmbeddedQuestion) {
	b := extract.ExtractBlock(text, extract.TagQuestion)
	if !b.Found {
		return b.Remainder, nil
	}
	span := trace.SpanFromContext(ctx)
	if b.Payload == nil {
		span.AddEvent("question dropped", trace.WithAttributes(attribute.String("reason", errString(b.Err))))
		p.log.Warn("question block dropped", "stage", "parse", "error", b.Err)
		return b.Remainder, nil
	}

	q, err := extract.DecodeQuestionWith(b.Payload, p.validators)
	if err != nil {
		span.AddEvent("question dropped", trace.WithAttributes(attribute.String("reason", err.Error())))
		p.log.Warn("question block dropped", "stage", "validate", "error", err)
		return b.Remainder, nil
	}
	p.log.Debug("question extracted", "question_id", q.ID, "options", len(q.Options))
	return b.Remainder, q
}

func (p *Processor) chart(ctx context.Context, text string) (string, *chart.Series) {
	b := extract.ExtractBlock(text, extract.TagChart)
	if !b.Found {
		return b.Remainder, nil
	}
	span := trace.SpanFromContext(ctx)
	if b.Payload == nil {
		span.AddEvent("chart dropped", trace.WithAttributes(attribute.String("reason", errString(b.Err))))
		p.log.Warn("chart block dropped", "stage", "parse", "error", b.Err)
		return b.Remainder, nil
	}

	series, err := chart.SynthesizeErr(b.Payload)
	if err != nil {
		span.AddEvent("chart dropped", trace.WithAttributes(attribute.String("reason", err.Error())))
		p.log.Warn("chart block dropped", "stage", "synthesize", "error", err)
		return b.Remainder, nil
	}
	p.log.Debug("chart synthesized", "kind", string(series.Kind), "points", len(series.Data))
	return b.Remainder, series
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
