package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

type fakeRecorder struct {
	events []RequestEvent
	err    error
}

func (f *fakeRecorder) AppendLLMRequest(_ context.Context, ev RequestEvent) error {
	f.events = append(f.events, ev)
	return f.err
}

func TestLogging_RecordsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`hello`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 3},
	})
	rec := &fakeRecorder{}
	p := WithLogging(mock, "mock", rec, nil)

	ctx := WithSession(WithPurpose(context.Background(), "tutor-turn"), "sess-1")
	if _, err := p.Generate(ctx, Request{System: "sys", Messages: []Message{{Role: RoleUser, Content: "q"}}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rec.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(rec.events))
	}
	ev := rec.events[0]
	if ev.Purpose != "tutor-turn" || ev.SessionID != "sess-1" {
		t.Errorf("purpose/session = %q/%q", ev.Purpose, ev.SessionID)
	}
	if !ev.Success || ev.InputTokens != 12 || ev.OutputTokens != 3 {
		t.Errorf("unexpected event: %+v", ev)
	}
	if !strings.Contains(ev.RequestBody, "[system]\nsys") || ev.ResponseBody != "hello" {
		t.Errorf("bodies not captured: %q / %q", ev.RequestBody, ev.ResponseBody)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{Err: errors.New("slow down")}})
	rec := &fakeRecorder{}
	p := WithLogging(mock, "mock", rec, nil)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}
	if rec.events[0].Success || rec.events[0].ErrorMessage == "" {
		t.Errorf("expected failed event with message, got %+v", rec.events[0])
	}
	if rec.events[0].Purpose != "unknown" {
		t.Errorf("purpose = %q, want unknown", rec.events[0].Purpose)
	}
}

func TestLogging_RecorderErrorDoesNotFailRequest(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`ok`)})
	p := WithLogging(mock, "mock", &fakeRecorder{err: errors.New("disk full")}, nil)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("recorder failure leaked into request: %v", err)
	}
}

func TestResponseText(t *testing.T) {
	tests := []struct {
		content string
		want    string
	}{
		{`plain reply`, "plain reply"},
		{`"quoted \"reply\""`, `quoted "reply"`},
		{`{"a":1}`, `{"a":1}`},
	}
	for _, tt := range tests {
		r := &Response{Content: json.RawMessage(tt.content)}
		if got := r.Text(); got != tt.want {
			t.Errorf("Text(%s) = %q, want %q", tt.content, got, tt.want)
		}
	}
	var nilResp *Response
	if nilResp.Text() != "" {
		t.Error("nil response should yield empty text")
	}
}

func TestTimeout_CancelsSlowProvider(t *testing.T) {
	p := WithTimeout(blockingProvider{}, 5*time.Millisecond)
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "blocking" }
