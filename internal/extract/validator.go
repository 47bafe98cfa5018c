package extract

import (
	"fmt"
	"strings"
)

// Validator checks an embedded question before it reaches the student.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for logs, e.g. "structural".
	Name() string

	// Validate returns nil when the question passes.
	Validate(q *EmbeddedQuestion) *ValidationError
}

// ValidationError describes why a question was dropped.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// DefaultValidators is the chain DecodeQuestion runs, in order.
func DefaultValidators() []Validator {
	return []Validator{
		&StructuralValidator{},
		&UniqueLabelValidator{},
		&AnswerLabelValidator{},
	}
}

// StructuralValidator checks required fields and option counts.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *EmbeddedQuestion) *ValidationError {
	if q.Text == "" {
		return &ValidationError{Validator: v.Name(), Message: "question text is empty"}
	}
	if len(q.Options) < 2 {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("need at least 2 options, got %d", len(q.Options))}
	}
	for i, o := range q.Options {
		if o.Label == "" {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("option %d has no label", i)}
		}
		if o.Text == "" {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("option %q has no text", o.Label)}
		}
	}
	if strings.TrimSpace(q.CorrectAnswer) == "" {
		return &ValidationError{Validator: v.Name(), Message: "correct answer is missing"}
	}
	return nil
}

// UniqueLabelValidator rejects options whose labels collide, ignoring case.
type UniqueLabelValidator struct{}

func (v *UniqueLabelValidator) Name() string { return "unique-labels" }

func (v *UniqueLabelValidator) Validate(q *EmbeddedQuestion) *ValidationError {
	seen := make(map[string]bool, len(q.Options))
	for _, o := range q.Options {
		key := strings.ToLower(o.Label)
		if seen[key] {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("duplicate label %q", o.Label)}
		}
		seen[key] = true
	}
	return nil
}

// AnswerLabelValidator requires the correct answer to name exactly one
// option label. "b", "(B)" and "B)" all name label "B"; on success the
// answer is rewritten to the canonical label.
type AnswerLabelValidator struct{}

func (v *AnswerLabelValidator) Name() string { return "answer-label" }

func (v *AnswerLabelValidator) Validate(q *EmbeddedQuestion) *ValidationError {
	want := normalizeLabel(q.CorrectAnswer)
	var matched []string
	for _, o := range q.Options {
		if normalizeLabel(o.Label) == want {
			matched = append(matched, o.Label)
		}
	}
	if len(matched) != 1 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("correct answer %q matches %d option labels", q.CorrectAnswer, len(matched)),
		}
	}
	q.CorrectAnswer = matched[0]
	return nil
}

// normalizeLabel reduces a label reference to its bare lowercase form.
func normalizeLabel(s string) string {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	for _, prefix := range []string{"option ", "choice ", "answer "} {
		if strings.HasPrefix(lower, prefix) {
			s = s[len(prefix):]
			break
		}
	}
	s = strings.Trim(s, " ()[].:")
	return strings.ToLower(s)
}
