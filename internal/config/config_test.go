package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	clearProviderEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Mode != "dev" || cfg.Log.Level != "info" {
		t.Errorf("log defaults = %+v", cfg.Log)
	}
	if cfg.LLM.Retry.MaxAttempts != 3 {
		t.Errorf("retry attempts = %d, want 3", cfg.LLM.Retry.MaxAttempts)
	}
	if cfg.Tutor.HistoryWindow <= 0 || cfg.Tutor.MaxTokens <= 0 {
		t.Errorf("tutor defaults = %+v", cfg.Tutor)
	}
	if cfg.LLM.Provider != "" {
		t.Errorf("expected no provider, got %q", cfg.LLM.Provider)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearProviderEnv(t)
	path := filepath.Join(t.TempDir(), "tutorcore.yaml")
	yml := `
llm:
  provider: openai
  openai:
    api_key: from-file
    model: gpt-4o
  timeout: 30s
log:
  mode: prod
tutor:
  history_window: 6
tracing:
  enabled: true
`
	if err := os.WriteFile(path, []byte(yml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TUTORCORE_LLM__OPENAI__API_KEY", "from-env")
	t.Setenv("TUTORCORE_LOG__LEVEL", "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LLM.Provider != "openai" || cfg.LLM.OpenAI.Model != "gpt-4o" {
		t.Errorf("llm = %+v", cfg.LLM)
	}
	if cfg.LLM.OpenAI.APIKey != "from-env" {
		t.Errorf("env should override file, got %q", cfg.LLM.OpenAI.APIKey)
	}
	if cfg.LLM.Timeout != 30*time.Second {
		t.Errorf("timeout = %v", cfg.LLM.Timeout)
	}
	if cfg.Log.Mode != "prod" || cfg.Log.Level != "debug" {
		t.Errorf("log = %+v", cfg.Log)
	}
	if cfg.Tutor.HistoryWindow != 6 {
		t.Errorf("history window = %d", cfg.Tutor.HistoryWindow)
	}
	if !cfg.Tracing.Enabled {
		t.Error("expected tracing enabled")
	}
}

func TestLoad_DiscoversProviderKey(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "a-key")
	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LLM.Provider != "anthropic" || cfg.LLM.Anthropic.APIKey != "a-key" {
		t.Fatalf("discovery failed: %+v", cfg.LLM)
	}
}

func TestLoad_InvalidValuesReported(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("TUTORCORE_LOG__MODE", "verbose")
	t.Setenv("TUTORCORE_TUTOR__TEMPERATURE", "3")

	_, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "Mode") || !strings.Contains(msg, "Temperature") {
		t.Fatalf("error should name both fields: %v", msg)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	clearProviderEnv(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("llm: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"TUTORCORE_LLM__PROVIDER":         "llm.provider",
		"TUTORCORE_LLM__OPENAI__API_KEY":  "llm.openai.api_key",
		"TUTORCORE_TUTOR__HISTORY_WINDOW": "tutor.history_window",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}
