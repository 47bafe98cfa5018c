package tutor

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/tutorcore/internal/extract"
	"github.com/abhisek/tutorcore/internal/llm"
	"github.com/abhisek/tutorcore/internal/mastery"
)

// Session is one tutoring conversation. A Session has a single writer:
// Respond must not be called concurrently on the same Session.
type Session struct {
	ID        string
	Topic     string
	StartedAt time.Time

	// State is the pacing state after the latest turn.
	State mastery.ConversationState

	// History is the role-tagged transcript, oldest first.
	History []llm.Message

	// Pending is the last embedded question not yet answered.
	Pending *extract.EmbeddedQuestion
	// PendingAt is when Pending was asked.
	PendingAt time.Time
}

// NewSession starts a session on topic.
func NewSession(topic string) *Session {
	topic = strings.TrimSpace(topic)
	return &Session{
		ID:        uuid.NewString(),
		Topic:     topic,
		StartedAt: time.Now(),
		State:     mastery.ConversationState{CurrentConcept: topic},
	}
}

// window returns the last n messages of the history.
func (s *Session) window(n int) []llm.Message {
	if n <= 0 || len(s.History) <= n {
		return s.History
	}
	return s.History[len(s.History)-n:]
}

// Transcript renders the history as plain "role: text" lines.
func (s *Session) Transcript() string {
	var b strings.Builder
	for _, m := range s.History {
		b.WriteString(string(m.Role))
		b.WriteString(": ")
		b.WriteString(m.Content)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
