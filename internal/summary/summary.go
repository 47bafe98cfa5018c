// Package summary produces an end-of-session recap through the completion
// client's structured output path.
package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/tutorcore/internal/llm"
	"github.com/abhisek/tutorcore/internal/mastery"
)

// Purpose labels summary completions in the event log.
const Purpose = "session-summary"

// Config holds summary generation settings.
type Config struct {
	MaxTokens   int     `koanf:"max_tokens" validate:"gte=1"`
	Temperature float64 `koanf:"temperature" validate:"gte=0,lte=1"`
	// MaxTranscriptChars bounds the transcript sent to the model; older
	// lines are dropped first.
	MaxTranscriptChars int `koanf:"max_transcript_chars" validate:"gte=200"`
}

// DefaultConfig returns sensible defaults for summaries.
func DefaultConfig() Config {
	return Config{
		MaxTokens:          512,
		Temperature:        0.3,
		MaxTranscriptChars: 6000,
	}
}

// Input is what a summary is built from.
type Input struct {
	Topic      string
	Transcript string
	State      mastery.ConversationState
}

// Summary is the recap of one session.
type Summary struct {
	Summary     string    `json:"summary"`
	Strengths   []string  `json:"strengths"`
	Priorities  []string  `json:"priorities"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// Summarizer generates session summaries.
type Summarizer struct {
	provider llm.Provider
	cfg      Config
}

// New creates a Summarizer.
func New(provider llm.Provider, cfg Config) *Summarizer {
	return &Summarizer{provider: provider, cfg: cfg}
}

type summaryOutput struct {
	Summary    string   `json:"summary"`
	Strengths  []string `json:"strengths"`
	Priorities []string `json:"priorities"`
}

// Generate asks the model for a summary of in.
func (s *Summarizer) Generate(ctx context.Context, in Input) (*Summary, error) {
	if strings.TrimSpace(in.Transcript) == "" {
		return nil, fmt.Errorf("session summary: empty transcript")
	}
	ctx = llm.WithPurpose(ctx, Purpose)

	req := llm.Request{
		System: summarySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSummaryUserMessage(in, s.cfg.MaxTranscriptChars)},
		},
		Schema:      SummarySchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("session summary: %w", err)
	}

	var out summaryOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse summary response: %w", err)
	}

	return &Summary{
		Summary:     strings.TrimSpace(out.Summary),
		Strengths:   out.Strengths,
		Priorities:  out.Priorities,
		GeneratedAt: time.Now(),
	}, nil
}
