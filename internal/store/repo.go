package store

import (
	"context"
	"time"

	"github.com/abhisek/tutorcore/internal/llm"
	"github.com/abhisek/tutorcore/internal/sanitize"
)

// QueryOpts configures event queries with filtering and pagination.
// Results are newest first.
type QueryOpts struct {
	Limit     int       // max results (0 = unlimited)
	After     int64     // sequence > After
	Before    int64     // sequence < Before
	From      time.Time // timestamp >= From
	To        time.Time // timestamp <= To
	SessionID string    // exact session match
	Purpose   string    // LLM events only
}

// EventHeader holds the columns every event table shares.
type EventHeader struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	SessionID string
}

// LLMRequestEvent is a stored completion call.
type LLMRequestEvent struct {
	EventHeader
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// SanitizeEvent is a stored sanitizer diagnostic.
type SanitizeEvent struct {
	EventHeader
	Stage     string
	Rules     []string
	InputLen  int
	OutputLen int
	Sample    string
}

// TurnEventData captures the outcome of one tutor turn.
type TurnEventData struct {
	SessionID        string
	Topic            string
	Exchange         int
	Answered         bool
	Correct          bool
	Question         bool
	ChartKind        string
	Concepts         []string
	ScaffoldingLevel int
}

// TurnEvent is a stored turn outcome.
type TurnEvent struct {
	EventHeader
	Topic            string
	Exchange         int
	Answered         bool
	Correct          bool
	Question         bool
	ChartKind        string
	Concepts         []string
	ScaffoldingLevel int
}

// UsageStats aggregates LLM usage for one purpose or model.
type UsageStats struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to domain events. It
// satisfies llm.EventRecorder and sanitize.DiagnosticSink.
type EventRepo interface {
	// AppendLLMRequest records a completion call.
	AppendLLMRequest(ctx context.Context, e llm.RequestEvent) error
	// Record stores a sanitizer diagnostic.
	Record(ctx context.Context, d sanitize.Diagnostic) error
	// AppendTurn records a turn outcome.
	AppendTurn(ctx context.Context, data TurnEventData) error

	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)
	// GetLLMEvent returns the event with the given id, or nil.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)
	LLMUsageByPurpose(ctx context.Context) ([]UsageStats, error)
	LLMUsageByModel(ctx context.Context) ([]UsageStats, error)

	QuerySanitizeEvents(ctx context.Context, opts QueryOpts) ([]SanitizeEvent, error)
	QueryTurnEvents(ctx context.Context, opts QueryOpts) ([]TurnEvent, error)
}

var (
	_ llm.EventRecorder       = (*eventRepo)(nil)
	_ sanitize.DiagnosticSink = (*eventRepo)(nil)
)
