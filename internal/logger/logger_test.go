package logger

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func observed(t *testing.T) (*Logger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	return &Logger{SugaredLogger: zap.New(core).Sugar(), hashSalt: "salt"}, logs
}

func TestRedactsSecrets(t *testing.T) {
	l, logs := observed(t)
	l.Info("configured", "api_key", "sk-live-123", "provider", "anthropic")

	entry := logs.All()[0]
	fields := entry.ContextMap()
	if fields["api_key"] != "[REDACTED]" {
		t.Errorf("api_key = %v, want redacted", fields["api_key"])
	}
	if fields["provider"] != "anthropic" {
		t.Errorf("provider = %v, want anthropic", fields["provider"])
	}
}

func TestTokenCountsAreNotRedacted(t *testing.T) {
	l, logs := observed(t)
	l.Debug("llm request", "input_tokens", 42, "output_tokens", 7)

	fields := logs.All()[0].ContextMap()
	if fields["input_tokens"] != int64(42) {
		t.Errorf("input_tokens = %v (%T), want 42", fields["input_tokens"], fields["input_tokens"])
	}
}

func TestHashesSessionIDs(t *testing.T) {
	l, logs := observed(t)
	l.Info("turn", "session_id", "abc-123")

	got, _ := logs.All()[0].ContextMap()["session_id"].(string)
	if !strings.HasPrefix(got, "hash:") || strings.Contains(got, "abc-123") {
		t.Errorf("session_id = %q, want hashed value", got)
	}
}

func TestWithKeepsRedaction(t *testing.T) {
	l, logs := observed(t)
	l.With("auth_token", "xyz").Warn("retrying")

	if logs.All()[0].ContextMap()["auth_token"] != "[REDACTED]" {
		t.Error("expected With fields to be redacted")
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New("dev", Options{Level: "chatty"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
