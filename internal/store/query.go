package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/tutorcore/internal/llm"
)

// eventRepo implements EventRepo on raw SQL built with ent's dialect
// builder and the global sequence counter.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

// insert appends one row, filling the shared event columns. The session
// id is taken from ctx unless cols already carries one.
func (r *eventRepo) insert(ctx context.Context, table string, cols []string, vals []any) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	hasSession := false
	for _, c := range cols {
		if c == "session_id" {
			hasSession = true
		}
	}
	cols = append([]string{"sequence", "timestamp"}, cols...)
	vals = append([]any{seqNum, time.Now().UTC().UnixMilli()}, vals...)
	if !hasSession {
		cols = append(cols, "session_id")
		vals = append(vals, llm.SessionFrom(ctx))
	}

	query, args := builder().Insert(table).Columns(cols...).Values(vals...).Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	return nil
}

// selectEvents builds a newest-first query over table applying opts.
func selectEvents(table string, opts QueryOpts) *entsql.Selector {
	sel := builder().Select(columnsOf(table)...).From(entsql.Table(table))

	var preds []*entsql.Predicate
	if opts.After > 0 {
		preds = append(preds, entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		preds = append(preds, entsql.LT("sequence", opts.Before))
	}
	if !opts.From.IsZero() {
		preds = append(preds, entsql.GTE("timestamp", opts.From.UTC().UnixMilli()))
	}
	if !opts.To.IsZero() {
		preds = append(preds, entsql.LTE("timestamp", opts.To.UTC().UnixMilli()))
	}
	if opts.SessionID != "" {
		preds = append(preds, entsql.EQ("session_id", opts.SessionID))
	}
	if opts.Purpose != "" && table == tableLLMRequests {
		preds = append(preds, entsql.EQ("purpose", opts.Purpose))
	}
	if len(preds) > 0 {
		sel.Where(entsql.And(preds...))
	}

	sel.OrderBy(entsql.Desc("sequence"))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	return sel
}

// scanHeader returns scan targets for the shared columns, in schema order.
func scanHeader(h *EventHeader, millis *int64) []any {
	return []any{&h.ID, &h.Sequence, millis, &h.SessionID}
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
