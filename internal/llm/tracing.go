package llm

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/abhisek/tutorcore/internal/llm"

// TracingProvider opens one span per completion call.
type TracingProvider struct {
	inner    Provider
	provider string
	tracer   trace.Tracer
}

// WithTracing wraps p so every Generate call is traced under the global
// tracer provider.
func WithTracing(p Provider, providerName string) Provider {
	return &TracingProvider{
		inner:    p,
		provider: providerName,
		tracer:   otel.Tracer(tracerName),
	}
}

func (t *TracingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, span := t.tracer.Start(ctx, "llm.generate",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("llm.provider", t.provider),
			attribute.String("llm.model", modelFor(req, t.inner.ModelID())),
			attribute.String("llm.purpose", PurposeFrom(ctx)),
			attribute.Bool("llm.structured", req.Schema != nil),
			attribute.Int("llm.messages", len(req.Messages)),
		),
	)
	defer span.End()

	resp, err := t.inner.Generate(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("llm.usage.input_tokens", resp.Usage.InputTokens),
		attribute.Int("llm.usage.output_tokens", resp.Usage.OutputTokens),
		attribute.String("llm.stop_reason", resp.StopReason),
	)
	return resp, nil
}

func (t *TracingProvider) ModelID() string {
	return t.inner.ModelID()
}
