// Package visualref removes prose that promises a chart or diagram when the
// reply carries none.
package visualref

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const visualNoun = `(visual|visual representation|diagram|graph|chart|picture|drawing|sketch|plot|illustration|figure|number line|model)`

// promisePatterns are the phrasings that refer to a visual.
var promisePatterns = []string{
	`\bhere['’]?s\s+(a|an|the|what)\s+(\w+\s+)?` + visualNoun,
	`\bhere\s+is\s+(a|an|the)\s+(\w+\s+)?` + visualNoun,
	`\blet\s+me\s+(show|draw|sketch|illustrate|graph|plot|visualize)\b`,
	`\b(take\s+a\s+)?look\s+at\s+(the|this)\s+` + visualNoun,
	`\b(i['’]?ve|i\s+have)\s+(drawn|sketched|plotted|graphed|included|created|made)\b`,
	`\b(the|this)\s+` + visualNoun + `\s+(below|above|shows)\b`,
	`\b(below|above)\s+is\s+(a|an|the)\s+` + visualNoun,
	`\bsee\s+(in\s+)?the\s+` + visualNoun + `\s+(below|above)\b`,
	`\bvisual\s+(representation|aid)\s+(below|above|here)\b`,
}

var promise = regexp.MustCompile(`(?i)(?:` + strings.Join(promisePatterns, "|") + `)`)

var (
	spaceRuns  = regexp.MustCompile(`[ \t]{2,}`)
	lineTrails = regexp.MustCompile(`[ \t]+\n`)
	blankRuns  = regexp.MustCompile(`\n{3,}`)
)

// Clean drops every sentence containing a visual promise unless a chart
// was extracted for this reply.
func Clean(text string, chartPresent bool) string {
	if chartPresent || !HasPromise(text) {
		return text
	}

	var b strings.Builder
	for _, seg := range sentences(text) {
		if seg != "\n" && promise.MatchString(seg) {
			continue
		}
		b.WriteString(seg)
	}

	out := lineTrails.ReplaceAllString(b.String(), "\n")
	out = spaceRuns.ReplaceAllString(out, " ")
	out = blankRuns.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}

// HasPromise reports whether text contains a visual-promise phrasing.
func HasPromise(text string) bool {
	return promise.MatchString(text)
}

// sentences splits text into segments whose concatenation is text. A
// segment ends after a run of . ! ? or : followed by whitespace or the
// end, together with trailing spaces; each newline is its own segment.
// Terminators inside tokens such as 0.5 do not split.
func sentences(text string) []string {
	var out []string
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case r == '\n':
			if i > start {
				out = append(out, text[start:i])
			}
			out = append(out, "\n")
			i += size
			start = i
		case isTerminator(r):
			j := i + size
			for j < len(text) && isTerminator(rune(text[j])) {
				j++
			}
			next, _ := utf8.DecodeRuneInString(text[j:])
			if j < len(text) && !unicode.IsSpace(next) {
				i = j
				continue
			}
			for j < len(text) && (text[j] == ' ' || text[j] == '\t') {
				j++
			}
			out = append(out, text[start:j])
			i, start = j, j
		default:
			i += size
		}
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?' || r == ':'
}
