package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/tutorcore/internal/logger"
)

// RequestEvent captures a single completion call for the event log.
type RequestEvent struct {
	Provider     string
	Model        string
	Purpose      string
	SessionID    string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// EventRecorder persists completion events. Implemented by the store.
type EventRecorder interface {
	AppendLLMRequest(ctx context.Context, ev RequestEvent) error
}

// LoggingProvider is a decorator that records every request as an event.
type LoggingProvider struct {
	inner    Provider
	provider string
	recorder EventRecorder
	log      *logger.Logger
}

// WithLogging wraps a Provider with event logging.
func WithLogging(p Provider, providerName string, recorder EventRecorder, log *logger.Logger) Provider {
	if log == nil {
		log = logger.Nop()
	}
	return &LoggingProvider{inner: p, provider: providerName, recorder: recorder, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	ev := RequestEvent{
		Provider:    l.provider,
		Model:       modelFor(req, l.inner.ModelID()),
		Purpose:     PurposeFrom(ctx),
		SessionID:   SessionFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}

	if resp != nil {
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		if resp.Model != "" {
			ev.Model = resp.Model
		}
		ev.ResponseBody = string(resp.Content)
	}

	if err != nil {
		ev.ErrorMessage = err.Error()
	}

	// Never fail the request because the event could not be written.
	if logErr := l.recorder.AppendLLMRequest(ctx, ev); logErr != nil {
		l.log.Warn("failed to record llm request event", "purpose", ev.Purpose, "error", logErr)
	}

	l.log.Debug("llm request",
		"purpose", ev.Purpose,
		"model", ev.Model,
		"latency_ms", ev.LatencyMs,
		"input_tokens", ev.InputTokens,
		"output_tokens", ev.OutputTokens,
		"success", ev.Success,
	)

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable representation of the request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		b.WriteString(fmt.Sprintf("[%s]\n", m.Role))
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	if req.Schema != nil {
		schemaDef, err := json.Marshal(req.Schema.Definition)
		if err == nil {
			b.WriteString(fmt.Sprintf("[schema: %s]\n", req.Schema.Name))
			b.WriteString(string(schemaDef))
			b.WriteString("\n")
		}
	}

	return b.String()
}
