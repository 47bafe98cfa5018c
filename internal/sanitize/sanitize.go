// Package sanitize repairs the text corruption language models tend to
// produce (glued words, stray math glyphs, doubled tokens) before any
// parsing happens.
package sanitize

import (
	"context"
	"unicode/utf8"
)

// maxPasses bounds the fixpoint loop. Real replies settle in one or two.
const maxPasses = 8

// sampleLen is how much of the input a Diagnostic keeps.
const sampleLen = 160

// Sanitize runs the repair pipeline without diagnostics.
func Sanitize(text string) string {
	out, _ := apply(text)
	return out
}

// Apply runs the repair pipeline and returns the labels of the content
// rules that changed the text, in pipeline order.
func Apply(text string) (string, []string) {
	return apply(text)
}

func apply(text string) (string, []string) {
	if !utf8.ValidString(text) {
		text = stripInvalidUTF8(text)
	}

	fired := make(map[string]bool)
	cur := text
	for range maxPasses {
		next := cur
		for _, r := range rules {
			before := next
			next = r.Apply(next)
			if r.Content && next != before {
				fired[r.Label] = true
			}
		}
		if next == cur {
			break
		}
		cur = next
	}

	var labels []string
	for _, r := range rules {
		if fired[r.Label] {
			labels = append(labels, r.Label)
		}
	}
	return cur, labels
}

func stripInvalidUTF8(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == utf8.RuneError {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

// Diagnostic describes a material repair, recorded for offline quality
// monitoring of model output.
type Diagnostic struct {
	Stage     string
	Rules     []string
	InputLen  int
	OutputLen int
	Sample    string
}

// DiagnosticSink receives diagnostics. Errors are ignored by the sanitizer.
type DiagnosticSink interface {
	Record(ctx context.Context, d Diagnostic) error
}

// Sanitizer runs the pipeline and reports material repairs to a sink.
type Sanitizer struct {
	sink DiagnosticSink
}

// New returns a Sanitizer reporting to sink. A nil sink disables diagnostics.
func New(sink DiagnosticSink) *Sanitizer {
	return &Sanitizer{sink: sink}
}

// Sanitize repairs text. stage labels the pipeline position ("pre", "post")
// in any diagnostic emitted.
func (s *Sanitizer) Sanitize(ctx context.Context, text, stage string) string {
	out, labels := apply(text)
	if len(labels) == 0 || s == nil || s.sink == nil {
		return out
	}

	sample := text
	if utf8.RuneCountInString(sample) > sampleLen {
		sample = string([]rune(sample)[:sampleLen])
	}
	_ = s.sink.Record(ctx, Diagnostic{
		Stage:     stage,
		Rules:     labels,
		InputLen:  len(text),
		OutputLen: len(out),
		Sample:    sample,
	})
	return out
}
