package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/tutorcore/internal/llm"
	"github.com/abhisek/tutorcore/internal/sanitize"
)

var testDBCounter int

func openTestStore(t *testing.T) *Store {
	t.Helper()
	// A named shared-cache database per test keeps tests isolated.
	testDBCounter++
	s, err := Open(fmt.Sprintf("file:store_test_%d?mode=memory&cache=shared", testDBCounter))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is checked in TestFileDatabaseUsesWAL.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestFileDatabaseUsesWAL(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "events.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Fatalf("journal_mode = %q, want wal", mode)
	}
}

func TestMigrateCreatesSchemaColumns(t *testing.T) {
	s := openTestStore(t)
	for _, table := range []string{tableLLMRequests, tableSanitize, tableTurns} {
		rows, err := s.DB().Query("SELECT name FROM pragma_table_info(?)", table)
		if err != nil {
			t.Fatalf("table_info %s: %v", table, err)
		}
		var got []string
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				t.Fatalf("scan: %v", err)
			}
			got = append(got, name)
		}
		rows.Close()

		want := columnsOf(table)
		if len(got) != len(want) {
			t.Fatalf("%s columns = %v, want %v", table, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%s column %d = %q, want %q", table, i, got[i], want[i])
			}
		}
	}
}

func TestMigrateCreatesIndexes(t *testing.T) {
	s := openTestStore(t)
	want := map[string][]string{
		tableLLMRequests: {"sequence", "timestamp", "session_id", "provider", "purpose", "success"},
		tableSanitize:    {"sequence", "timestamp", "session_id", "stage"},
	}
	for table, fields := range want {
		for _, f := range fields {
			var n int
			err := s.DB().QueryRow(
				"SELECT COUNT(*) FROM pragma_index_list(?) WHERE name = ?", table, table+"_"+f,
			).Scan(&n)
			if err != nil {
				t.Fatalf("index_list %s: %v", table, err)
			}
			if n != 1 {
				t.Errorf("index %s_%s missing", table, f)
			}
		}
	}
}

func TestMigrateStoresTimesAsIntegers(t *testing.T) {
	s := openTestStore(t)
	var typ string
	err := s.DB().QueryRow(
		"SELECT type FROM pragma_table_info(?) WHERE name = 'timestamp'", tableTurns,
	).Scan(&typ)
	if err != nil {
		t.Fatalf("table_info: %v", err)
	}
	if typ != "integer" && typ != "INTEGER" {
		t.Errorf("timestamp column type = %q, want integer", typ)
	}
}

func TestMigrateIsRepeatable(t *testing.T) {
	s := openTestStore(t)
	if err := migrate(context.Background(), s.DB()); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	second, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if second != first+1 {
		t.Fatalf("sequence not monotonic: %d then %d", first, second)
	}
}

func TestLLMEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := llm.WithSession(context.Background(), "sess-1")

	err := repo.AppendLLMRequest(ctx, llm.RequestEvent{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-5",
		Purpose:      "tutor-turn",
		InputTokens:  120,
		OutputTokens: 80,
		LatencyMs:    900,
		Success:      true,
		RequestBody:  "[user]\nhi",
		ResponseBody: "hello",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	err = repo.AppendLLMRequest(context.Background(), llm.RequestEvent{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-5",
		Purpose:      "session-summary",
		Success:      false,
		ErrorMessage: "rate limited",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	// Newest first.
	if events[0].Purpose != "session-summary" || events[0].Success {
		t.Errorf("unexpected newest event: %+v", events[0])
	}
	if events[1].SessionID != "sess-1" || events[1].ResponseBody != "hello" || !events[1].Success {
		t.Errorf("unexpected oldest event: %+v", events[1])
	}
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("sequence order wrong: %d <= %d", events[0].Sequence, events[1].Sequence)
	}
	if time.Since(events[0].Timestamp) > time.Minute {
		t.Errorf("timestamp not recent: %v", events[0].Timestamp)
	}

	filtered, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "tutor-turn"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(filtered) != 1 || filtered[0].InputTokens != 120 {
		t.Fatalf("purpose filter: %+v", filtered)
	}

	got, err := repo.GetLLMEvent(ctx, events[1].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.RequestBody != "[user]\nhi" {
		t.Fatalf("get returned %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil || missing != nil {
		t.Fatalf("missing event: %+v, %v", missing, err)
	}
}

func TestLLMUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_ = repo.AppendLLMRequest(ctx, llm.RequestEvent{Provider: "openai", Model: "gpt-4o-mini", Purpose: "tutor-turn", InputTokens: 10, OutputTokens: 5, LatencyMs: 100, Success: true})
	}
	_ = repo.AppendLLMRequest(ctx, llm.RequestEvent{Provider: "openai", Model: "gpt-4o", Purpose: "session-summary", InputTokens: 50, OutputTokens: 20, LatencyMs: 300, Success: true})

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purposes, got %+v", byPurpose)
	}
	top := byPurpose[0]
	if top.Purpose != "tutor-turn" || top.Calls != 3 || top.InputTokens != 30 || top.OutputTokens != 15 || top.AvgLatencyMs != 100 {
		t.Errorf("tutor-turn usage = %+v", top)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 || byModel[1].Model != "gpt-4o" || byModel[1].InputTokens != 50 {
		t.Errorf("usage by model = %+v", byModel)
	}
}

func TestSanitizeEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	sz := sanitize.New(repo)
	out := sz.Sanitize(ctx, "3.They−interceptis10", "pre")
	if out == "3.They−interceptis10" {
		t.Fatal("expected a repair")
	}

	events, err := repo.QuerySanitizeEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	e := events[0]
	if e.Stage != "pre" || len(e.Rules) == 0 || e.Sample != "3.They−interceptis10" {
		t.Errorf("unexpected event: %+v", e)
	}
}

func TestTurnEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		err := repo.AppendTurn(ctx, TurnEventData{
			SessionID: "s1",
			Topic:     "slope",
			Exchange:  i,
			Answered:  i > 1,
			Correct:   i == 3,
			Question:  true,
			ChartKind: "linear",
			Concepts:  []string{"slope", "y-intercept"},
		})
		if err != nil {
			t.Fatalf("append turn %d: %v", i, err)
		}
	}
	_ = repo.AppendTurn(ctx, TurnEventData{SessionID: "s2", Topic: "mean", Exchange: 1})

	turns, err := repo.QueryTurnEvents(ctx, QueryOpts{SessionID: "s1", Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(turns))
	}
	if turns[0].Exchange != 3 || !turns[0].Correct || turns[0].ChartKind != "linear" {
		t.Errorf("latest turn = %+v", turns[0])
	}
	if len(turns[0].Concepts) != 2 || turns[0].Concepts[1] != "y-intercept" {
		t.Errorf("concepts = %v", turns[0].Concepts)
	}

	after, err := repo.QueryTurnEvents(ctx, QueryOpts{After: turns[0].Sequence})
	if err != nil {
		t.Fatalf("query after: %v", err)
	}
	if len(after) != 1 || after[0].SessionID != "s2" {
		t.Errorf("after filter = %+v", after)
	}
}
