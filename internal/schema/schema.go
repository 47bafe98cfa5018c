// Package schema holds JSON Schema definitions shared by the completion
// client (structured output) and the reply extractor (embedded payloads).
package schema

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema defines a JSON structure by name.
type Schema struct {
	// Name identifies this schema (used as tool name for Anthropic,
	// schema name for OpenAI). Kebab-case, e.g. "session-summary".
	Name string

	// Description is a human-readable description of what this schema
	// represents. Sent to the model to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// compiledCache caches compiled JSON schemas by name.
var compiledCache sync.Map // map[string]*jsonschema.Schema

// Validate checks raw JSON against s. A nil schema accepts anything.
func Validate(s *Schema, raw json.RawMessage) error {
	if s == nil {
		return nil
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return ValidateValue(s, parsed)
}

// ValidateValue checks an already decoded JSON value against s.
func ValidateValue(s *Schema, v any) error {
	if s == nil {
		return nil
	}

	compiled, err := compile(s)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", s.Name, err)
	}

	if err := compiled.Validate(v); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// compile returns a cached compiled schema or compiles and caches it.
func compile(s *Schema) (*jsonschema.Schema, error) {
	if cached, ok := compiledCache.Load(s.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a decoded JSON value, not Go maps with typed slices.
	defBytes, err := json.Marshal(s.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", s.Name)
	if err := c.AddResource(url, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	compiledCache.Store(s.Name, compiled)
	return compiled, nil
}
