package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/tutorcore/internal/sanitize"
)

// Record stores a sanitizer diagnostic. It makes the repo a
// sanitize.DiagnosticSink.
func (r *eventRepo) Record(ctx context.Context, d sanitize.Diagnostic) error {
	err := r.insert(ctx, tableSanitize,
		[]string{"stage", "rules", "input_len", "output_len", "sample"},
		[]any{d.Stage, strings.Join(d.Rules, ","), d.InputLen, d.OutputLen, d.Sample},
	)
	if err != nil {
		return fmt.Errorf("save sanitize event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySanitizeEvents(ctx context.Context, opts QueryOpts) ([]SanitizeEvent, error) {
	query, args := selectEvents(tableSanitize, opts).Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sanitize events: %w", err)
	}
	defer rows.Close()

	var out []SanitizeEvent
	for rows.Next() {
		var e SanitizeEvent
		var ms int64
		var rules string
		dest := append(scanHeader(&e.EventHeader, &ms), &e.Stage, &rules, &e.InputLen, &e.OutputLen, &e.Sample)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan sanitize event: %w", err)
		}
		e.Timestamp = fromMillis(ms)
		e.Rules = splitList(rules)
		out = append(out, e)
	}
	return out, rows.Err()
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
