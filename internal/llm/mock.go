package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one scripted reply for MockProvider. When Err is set it
// is returned instead of a response.
type MockResponse struct {
	Content    json.RawMessage
	Usage      Usage
	StopReason string
	Err        error
}

// MockText scripts a raw-text reply, the shape tutoring turns use.
func MockText(text string) MockResponse {
	b, _ := json.Marshal(text)
	return MockResponse{Content: b}
}

// MockProvider replays scripted replies in order and records every request.
// It is used by the "mock" provider setting and by tests across the module.
type MockProvider struct {
	// Model is reported by ModelID and on responses. Defaults to "mock".
	Model string

	mu    sync.Mutex
	queue []MockResponse
	Calls []Request
}

// NewMockProvider returns a MockProvider that will replay responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{queue: responses}
}

// Generate pops the next scripted reply. An exhausted script looks like an
// unavailable provider.
func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)
	if len(m.queue) == 0 {
		return nil, &ErrProviderUnavailable{}
	}

	next := m.queue[0]
	m.queue = m.queue[1:]
	if next.Err != nil {
		return nil, next.Err
	}

	stop := next.StopReason
	if stop == "" {
		stop = "end"
	}
	return &Response{
		Content:    next.Content,
		Usage:      next.Usage,
		Model:      modelFor(req, m.ModelID()),
		StopReason: stop,
	}, nil
}

func (m *MockProvider) ModelID() string {
	if m.Model == "" {
		return "mock"
	}
	return m.Model
}

// AddResponse appends to the script.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, resp)
}

// Pending reports how many scripted replies remain.
func (m *MockProvider) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// LastRequest returns the most recent request and false when none was made.
func (m *MockProvider) LastRequest() (Request, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Calls) == 0 {
		return Request{}, false
	}
	return m.Calls[len(m.Calls)-1], true
}
