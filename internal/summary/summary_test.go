package summary

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/tutorcore/internal/llm"
	"github.com/abhisek/tutorcore/internal/mastery"
)

func TestSummarizer_Generate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"summary": "The student practiced slope and identified it from slope-intercept form.",
			"strengths": ["reads slope from y = mx + b"],
			"priorities": ["finding slope from two points", "negative slopes"]
		}`),
	})
	s := New(mock, DefaultConfig())

	out, err := s.Generate(t.Context(), Input{
		Topic:      "slope",
		Transcript: "user: what is slope?\nassistant: Slope is rise over run.",
		State:      mastery.ConversationState{ExchangeCount: 4, ConsecutiveCorrect: 3, QuestionsOnConcept: 3},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out.Summary, "The student practiced slope") {
		t.Errorf("unexpected summary: %q", out.Summary)
	}
	if len(out.Priorities) != 2 || len(out.Strengths) != 1 {
		t.Errorf("unexpected lists: %+v", out)
	}
	if out.GeneratedAt.IsZero() {
		t.Error("expected GeneratedAt to be set")
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "session-summary" {
		t.Error("expected schema name 'session-summary'")
	}
	msg := req.Messages[0].Content
	if !strings.Contains(msg, "Topic: slope") || !strings.Contains(msg, "Final phase: ready") {
		t.Errorf("user message missing state: %s", msg)
	}
}

func TestSummarizer_EmptyTranscript(t *testing.T) {
	mock := llm.NewMockProvider()
	s := New(mock, DefaultConfig())
	if _, err := s.Generate(t.Context(), Input{Topic: "mean"}); err == nil {
		t.Fatal("expected error for empty transcript")
	}
	if mock.CallCount() != 0 {
		t.Fatal("provider should not be called")
	}
}

func TestSummarizer_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	s := New(mock, DefaultConfig())
	if _, err := s.Generate(t.Context(), Input{Transcript: "user: hi"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestTail(t *testing.T) {
	in := "line one\nline two\nline three"
	if got := tail(in, 100); got != in {
		t.Errorf("short input changed: %q", got)
	}
	if got := tail(in, 14); got != "line three" {
		t.Errorf("tail = %q, want %q", got, "line three")
	}
}
