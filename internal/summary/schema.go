package summary

import "github.com/abhisek/tutorcore/internal/llm"

// SummarySchema defines the JSON schema for a session summary.
var SummarySchema = &llm.Schema{
	Name:        "session-summary",
	Description: "Recap of a tutoring session with strengths and next priorities",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "3-5 sentence recap of what the student worked on and how it went",
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-3 things the student did well (5-10 words each)",
			},
			"priorities": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-3 concepts to work on next session (5-10 words each)",
			},
		},
		"required":             []any{"summary", "strengths", "priorities"},
		"additionalProperties": false,
	},
}
