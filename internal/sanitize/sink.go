package sanitize

import (
	"context"
	"errors"

	"github.com/abhisek/tutorcore/internal/logger"
)

// LogSink writes diagnostics as structured debug logs.
type LogSink struct {
	Log *logger.Logger
}

func (l LogSink) Record(_ context.Context, d Diagnostic) error {
	l.Log.Debug("sanitizer repaired reply",
		"stage", d.Stage,
		"rules", d.Rules,
		"input_len", d.InputLen,
		"output_len", d.OutputLen,
	)
	return nil
}

// MultiSink fans a diagnostic out to several sinks.
type MultiSink []DiagnosticSink

func (m MultiSink) Record(ctx context.Context, d Diagnostic) error {
	var errs []error
	for _, s := range m {
		if s == nil {
			continue
		}
		if err := s.Record(ctx, d); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
