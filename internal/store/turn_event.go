package store

import (
	"context"
	"fmt"
	"strings"
)

func (r *eventRepo) AppendTurn(ctx context.Context, d TurnEventData) error {
	cols := []string{
		"topic", "exchange", "answered", "correct", "question",
		"chart_kind", "concepts", "scaffolding_level",
	}
	vals := []any{
		d.Topic, d.Exchange, d.Answered, d.Correct, d.Question,
		d.ChartKind, strings.Join(d.Concepts, ","), d.ScaffoldingLevel,
	}
	if d.SessionID != "" {
		cols = append(cols, "session_id")
		vals = append(vals, d.SessionID)
	}
	if err := r.insert(ctx, tableTurns, cols, vals); err != nil {
		return fmt.Errorf("save turn event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryTurnEvents(ctx context.Context, opts QueryOpts) ([]TurnEvent, error) {
	query, args := selectEvents(tableTurns, opts).Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query turn events: %w", err)
	}
	defer rows.Close()

	var out []TurnEvent
	for rows.Next() {
		var e TurnEvent
		var ms int64
		var tags string
		dest := append(scanHeader(&e.EventHeader, &ms),
			&e.Topic, &e.Exchange, &e.Answered, &e.Correct, &e.Question,
			&e.ChartKind, &tags, &e.ScaffoldingLevel,
		)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan turn event: %w", err)
		}
		e.Timestamp = fromMillis(ms)
		e.Concepts = splitList(tags)
		out = append(out, e)
	}
	return out, rows.Err()
}
