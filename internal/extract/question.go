package extract

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/tutorcore/internal/schema"
)

// EmbeddedQuestion is a practice question the model attached to its reply.
type EmbeddedQuestion struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	Options       []Option `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
}

// Option is one labelled answer choice.
type Option struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Option returns the option with the given label, or nil.
func (q *EmbeddedQuestion) Option(label string) *Option {
	for i := range q.Options {
		if q.Options[i].Label == label {
			return &q.Options[i]
		}
	}
	return nil
}

// QuestionSchema is the shape a <question> payload must have before it is
// normalized. It accepts the aliases models commonly use.
var QuestionSchema = &schema.Schema{
	Name:        "embedded-question",
	Description: "A multiple-choice practice question embedded in a tutoring reply",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text":     map[string]any{"type": "string", "minLength": 1},
			"question": map[string]any{"type": "string", "minLength": 1},
			"options": map[string]any{
				"anyOf": []any{
					map[string]any{
						"type": "array",
						"items": map[string]any{
							"anyOf": []any{
								map[string]any{
									"type": "object",
									"properties": map[string]any{
										"label": map[string]any{"type": []any{"string", "number"}},
										"text":  map[string]any{"type": []any{"string", "number"}},
									},
									"required": []any{"label", "text"},
								},
								map[string]any{"type": "string"},
							},
						},
					},
					map[string]any{
						"type":                 "object",
						"additionalProperties": map[string]any{"type": []any{"string", "number"}},
					},
				},
			},
			"correctAnswer":  map[string]any{"type": []any{"string", "number"}},
			"correct_answer": map[string]any{"type": []any{"string", "number"}},
			"answer":         map[string]any{"type": []any{"string", "number"}},
			"explanation":    map[string]any{"type": "string"},
		},
		"anyOf": []any{
			map[string]any{"required": []any{"text"}},
			map[string]any{"required": []any{"question"}},
		},
		"required": []any{"options"},
	},
}

// rawQuestion mirrors the payload with every accepted alias.
type rawQuestion struct {
	Text          string          `json:"text"`
	Question      string          `json:"question"`
	Options       json.RawMessage `json:"options"`
	CorrectAnswer any             `json:"correctAnswer"`
	CorrectSnake  any             `json:"correct_answer"`
	Answer        any             `json:"answer"`
	Explanation   string          `json:"explanation"`
}

// DecodeQuestion turns a parsed <question> payload into a validated
// EmbeddedQuestion. Any schema or validator failure is returned as an
// error; callers drop the question.
func DecodeQuestion(payload json.RawMessage) (*EmbeddedQuestion, error) {
	return DecodeQuestionWith(payload, DefaultValidators())
}

// DecodeQuestionWith is DecodeQuestion with an explicit validator chain.
func DecodeQuestionWith(payload json.RawMessage, validators []Validator) (*EmbeddedQuestion, error) {
	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}
	if err := schema.Validate(QuestionSchema, payload); err != nil {
		return nil, err
	}

	var raw rawQuestion
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("decode question: %w", err)
	}

	opts, err := decodeOptions(raw.Options)
	if err != nil {
		return nil, err
	}

	q := &EmbeddedQuestion{
		ID:            uuid.NewString(),
		Text:          strings.TrimSpace(firstNonEmpty(raw.Text, raw.Question)),
		Options:       opts,
		CorrectAnswer: scalarString(firstNonNil(raw.CorrectAnswer, raw.CorrectSnake, raw.Answer)),
		Explanation:   strings.TrimSpace(raw.Explanation),
	}

	for _, v := range validators {
		if verr := v.Validate(q); verr != nil {
			return nil, verr
		}
	}
	return q, nil
}

// decodeOptions accepts [{label,text}], ["A) 3", …] or {"A": "3", …}.
func decodeOptions(raw json.RawMessage) ([]Option, error) {
	var objs []struct {
		Label any `json:"label"`
		Text  any `json:"text"`
	}
	if err := json.Unmarshal(raw, &objs); err == nil && allObjects(raw) {
		out := make([]Option, len(objs))
		for i, o := range objs {
			out[i] = Option{Label: strings.TrimSpace(scalarString(o.Label)), Text: strings.TrimSpace(scalarString(o.Text))}
		}
		return out, nil
	}

	var strs []string
	if err := json.Unmarshal(raw, &strs); err == nil {
		out := make([]Option, len(strs))
		for i, s := range strs {
			label, text := splitLabelled(s)
			if label == "" {
				label = string(rune('A' + i))
			}
			out[i] = Option{Label: label, Text: text}
		}
		return out, nil
	}

	var byLabel map[string]any
	if err := json.Unmarshal(raw, &byLabel); err == nil {
		labels := make([]string, 0, len(byLabel))
		for k := range byLabel {
			labels = append(labels, k)
		}
		sort.Strings(labels)
		out := make([]Option, len(labels))
		for i, k := range labels {
			out[i] = Option{Label: strings.TrimSpace(k), Text: strings.TrimSpace(scalarString(byLabel[k]))}
		}
		return out, nil
	}

	return nil, fmt.Errorf("options: unsupported shape")
}

func allObjects(raw json.RawMessage) bool {
	var items []json.RawMessage
	if json.Unmarshal(raw, &items) != nil {
		return false
	}
	for _, it := range items {
		t := strings.TrimSpace(string(it))
		if !strings.HasPrefix(t, "{") {
			return false
		}
	}
	return true
}

// splitLabelled splits "B) 4" or "B. 4" or "(B) 4" into ("B", "4").
func splitLabelled(s string) (string, string) {
	s = strings.TrimSpace(s)
	t := strings.TrimPrefix(s, "(")
	if len(t) >= 2 {
		r := t[0]
		isLabel := (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '1' && r <= '9')
		delim := t[1] == ')' || ((t[1] == '.' || t[1] == ':') && len(t) > 2 && t[2] == ' ')
		if isLabel && delim {
			return string(r), strings.TrimSpace(t[2:])
		}
	}
	return "", s
}

func scalarString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func firstNonNil(vals ...any) any {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}
