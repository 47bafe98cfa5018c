// Package observability installs the global OpenTelemetry tracer provider.
package observability

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.27.0"

	"github.com/abhisek/tutorcore/internal/logger"
)

type OtelConfig struct {
	Enabled     bool
	ServiceName string
	Version     string
	// SampleRatio is the fraction of root spans kept, 0 to 1.
	SampleRatio float64
	// Writer receives exported spans. Default: stderr.
	Writer io.Writer
}

var (
	otelOnce     sync.Once
	otelShutdown = noopShutdown
)

func noopShutdown(context.Context) error { return nil }

// InitOTel installs a tracer provider exporting to cfg.Writer and returns
// its shutdown func. When tracing is disabled the global no-op provider is
// left in place and the returned func does nothing. Only the first call
// has any effect.
func InitOTel(ctx context.Context, log *logger.Logger, cfg OtelConfig) func(context.Context) error {
	otelOnce.Do(func() {
		if !cfg.Enabled {
			return
		}
		tp, err := NewTracerProvider(ctx, cfg)
		if err != nil {
			if log != nil {
				log.Warn("otel init failed (continuing without tracing)", "error", err)
			}
			return
		}
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		))
		otelShutdown = tp.Shutdown
		if log != nil {
			log.Debug("otel tracing initialized", "service", serviceName(cfg))
		}
	})
	return otelShutdown
}

// NewTracerProvider builds a provider with the stdout exporter without
// touching global state.
func NewTracerProvider(ctx context.Context, cfg OtelConfig) (*sdktrace.TracerProvider, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName(cfg)),
			semconv.ServiceVersionKey.String(strings.TrimSpace(cfg.Version)),
			attribute.String("service.component", "turn-pipeline"),
		),
	)
	if err != nil {
		return nil, err
	}

	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	exp, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, err
	}

	return sdktrace.NewTracerProvider(
		// Syncer keeps span output ordered with command output in a CLI.
		sdktrace.WithSyncer(exp),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(clampRatio(cfg.SampleRatio)))),
		sdktrace.WithResource(res),
	), nil
}

func serviceName(cfg OtelConfig) string {
	if name := strings.TrimSpace(cfg.ServiceName); name != "" {
		return name
	}
	return "tutorcore"
}

func clampRatio(r float64) float64 {
	switch {
	case r < 0:
		return 0
	case r > 1:
		return 1
	}
	return r
}
