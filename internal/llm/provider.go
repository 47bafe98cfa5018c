package llm

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/abhisek/tutorcore/internal/schema"
)

// Provider is the core abstraction over a hosted completion service.
type Provider interface {
	// Generate sends a prompt to the model. When the request's Schema is
	// set the provider uses its native structured output mechanism and the
	// response Content is validated JSON; otherwise Content carries the
	// model's raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system prompt. Sets the tutor's role and constraints.
	System string

	// Messages is the role-tagged conversation. System messages in this
	// slice are folded into the system prompt by providers that only
	// accept a single system instruction.
	Messages []Message

	// Schema is the JSON Schema the response must conform to.
	// When nil, the response Content is raw text.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64

	// Model overrides the provider's configured model for this request.
	Model string
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the model.
type Schema = schema.Schema

// Response holds the model's output.
type Response struct {
	// Content is the generated output. Validated JSON when a Schema was
	// requested, the raw reply text otherwise.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Text returns the reply as plain text. Content that is a JSON string
// literal is unquoted; anything else is returned as-is.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	trimmed := strings.TrimSpace(string(r.Content))
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal([]byte(trimmed), &s); err == nil {
			return s
		}
	}
	return string(r.Content)
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// systemPrompt merges Request.System with any system-role messages.
func systemPrompt(req Request) string {
	parts := make([]string, 0, 1)
	if req.System != "" {
		parts = append(parts, req.System)
	}
	for _, m := range req.Messages {
		if m.Role == RoleSystem && m.Content != "" {
			parts = append(parts, m.Content)
		}
	}
	return strings.Join(parts, "\n\n")
}

// conversation returns the non-system messages in order.
func conversation(msgs []Message) []Message {
	out := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		if m.Role == RoleSystem {
			continue
		}
		out = append(out, m)
	}
	return out
}

// modelFor picks the request override or the provider default.
func modelFor(req Request, fallback string) string {
	if req.Model != "" {
		return req.Model
	}
	return fallback
}
