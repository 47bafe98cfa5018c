package extract

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyPayload is returned for blocks with no content.
var ErrEmptyPayload = errors.New("empty payload")

// ParseLenient parses JSON the way models actually write it: wrapped in a
// markdown fence, with // or /* */ comments, or with trailing commas.
// Comment markers inside string literals are left alone. When the cleaned
// text still is not valid JSON, the first balanced object in it is tried.
func ParseLenient(raw string) (json.RawMessage, error) {
	s := stripCodeFences(strings.TrimSpace(raw))
	if s == "" {
		return nil, ErrEmptyPayload
	}

	cleaned := stripTrailingCommas(stripComments(s))

	var v any
	err := json.Unmarshal([]byte(cleaned), &v)
	if err == nil {
		return compact(cleaned)
	}

	if obj := firstObject(cleaned); obj != "" && obj != cleaned {
		if json.Unmarshal([]byte(obj), &v) == nil {
			return compact(obj)
		}
	}
	return nil, fmt.Errorf("invalid JSON: %w", err)
}

func compact(s string) (json.RawMessage, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(s)); err != nil {
		return nil, fmt.Errorf("compact: %w", err)
	}
	return json.RawMessage(buf.Bytes()), nil
}

// stripCodeFences removes a surrounding ```json … ``` fence.
func stripCodeFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		// Drop the info string ("json", "JSON", …) on the fence line.
		if !strings.ContainsAny(s[:nl], "{[") {
			s = s[nl+1:]
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// stripComments removes // line comments and /* */ block comments that
// appear outside string literals.
func stripComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString, escaped := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			b.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch {
		case c == '"':
			inString = true
			b.WriteByte(c)
		case c == '/' && i+1 < len(s) && s[i+1] == '/':
			for i < len(s) && s[i] != '\n' {
				i++
			}
			if i < len(s) {
				b.WriteByte('\n')
			}
		case c == '/' && i+1 < len(s) && s[i+1] == '*':
			end := strings.Index(s[i+2:], "*/")
			if end < 0 {
				return b.String()
			}
			i += end + 3
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// stripTrailingCommas removes commas that directly precede } or ].
func stripTrailingCommas(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString, escaped := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			b.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		if c == '"' {
			inString = true
			b.WriteByte(c)
			continue
		}
		if c == ',' {
			j := i + 1
			for j < len(s) && isSpace(s[j]) {
				j++
			}
			if j < len(s) && (s[j] == '}' || s[j] == ']') {
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// firstObject returns the first balanced {...} span in s, or "".
func firstObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}
	depth := 0
	inString, escaped := false, false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
