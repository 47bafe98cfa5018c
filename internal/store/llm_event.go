package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/tutorcore/internal/llm"
)

func (r *eventRepo) AppendLLMRequest(ctx context.Context, e llm.RequestEvent) error {
	cols := []string{
		"provider", "model", "purpose", "input_tokens", "output_tokens",
		"latency_ms", "success", "error_message", "request_body", "response_body",
	}
	vals := []any{
		e.Provider, e.Model, e.Purpose, e.InputTokens, e.OutputTokens,
		e.LatencyMs, e.Success, e.ErrorMessage, e.RequestBody, e.ResponseBody,
	}
	if e.SessionID != "" {
		cols = append(cols, "session_id")
		vals = append(vals, e.SessionID)
	}
	if err := r.insert(ctx, tableLLMRequests, cols, vals); err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func scanLLMEvent(rows interface{ Scan(...any) error }) (LLMRequestEvent, error) {
	var e LLMRequestEvent
	var ms int64
	dest := append(scanHeader(&e.EventHeader, &ms),
		&e.Provider, &e.Model, &e.Purpose, &e.InputTokens, &e.OutputTokens,
		&e.LatencyMs, &e.Success, &e.ErrorMessage, &e.RequestBody, &e.ResponseBody,
	)
	if err := rows.Scan(dest...); err != nil {
		return e, err
	}
	e.Timestamp = fromMillis(ms)
	return e, nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error) {
	query, args := selectEvents(tableLLMRequests, opts).Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	defer rows.Close()

	var out []LLMRequestEvent
	for rows.Next() {
		e, err := scanLLMEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan LLM event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error) {
	query, args := builder().Select(columnsOf(tableLLMRequests)...).
		From(entsql.Table(tableLLMRequests)).
		Where(entsql.EQ("id", id)).
		Query()

	e, err := scanLLMEvent(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get LLM event %d: %w", id, err)
	}
	return &e, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]UsageStats, error) {
	return r.usage(ctx, "purpose")
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]UsageStats, error) {
	return r.usage(ctx, "model")
}

// usage aggregates calls and tokens grouped by one column.
func (r *eventRepo) usage(ctx context.Context, groupBy string) ([]UsageStats, error) {
	query, args := builder().Select(
		groupBy,
		entsql.As(entsql.Count("*"), "calls"),
		entsql.As("COALESCE(SUM(input_tokens), 0)", "input_tokens"),
		entsql.As("COALESCE(SUM(output_tokens), 0)", "output_tokens"),
		entsql.As("CAST(COALESCE(AVG(latency_ms), 0) AS INTEGER)", "avg_latency_ms"),
	).
		From(entsql.Table(tableLLMRequests)).
		GroupBy(groupBy).
		OrderBy(entsql.Desc("calls"), groupBy).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query usage by %s: %w", groupBy, err)
	}
	defer rows.Close()

	var out []UsageStats
	for rows.Next() {
		var s UsageStats
		var key string
		if err := rows.Scan(&key, &s.Calls, &s.InputTokens, &s.OutputTokens, &s.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan usage: %w", err)
		}
		if groupBy == "model" {
			s.Model = key
		} else {
			s.Purpose = key
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
