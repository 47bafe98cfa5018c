package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// sequenceCounter issues the ordering number shared by every event table,
// so a completion call sorts correctly against the sanitizer repair and the
// turn record it produced. A single-row table holds the next value.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

const (
	createSequenceTable = `CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`
	seedSequence    = `INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`
	advanceSequence = `UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`
)

func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	for _, stmt := range []string{createSequenceTable, seedSequence} {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("init global sequence: %w", err)
		}
	}
	return &sequenceCounter{db: db}, nil
}

// Next returns the current value and advances the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	if err := sc.db.QueryRowContext(ctx, advanceSequence).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}
