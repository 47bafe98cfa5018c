package llm

import (
	"encoding/json"

	"github.com/abhisek/tutorcore/internal/schema"
)

// validateResponse validates raw JSON against the given Schema.
// Returns nil if no schema is provided or validation passes.
// Returns *ErrInvalidResponse on failure.
func validateResponse(s *Schema, raw json.RawMessage) error {
	if s == nil {
		return nil
	}
	if err := schema.Validate(s, raw); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: err}
	}
	return nil
}
