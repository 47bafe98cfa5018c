// Package extract pulls delimiter-wrapped payloads (<question>, <chart>)
// out of model prose and parses them leniently.
package extract

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// Tag names used by the tutoring reply protocol.
const (
	TagQuestion = "question"
	TagChart    = "chart"
)

// Block is the result of extracting one tagged block.
type Block struct {
	// Remainder is the text with the block (delimiters included) removed.
	// Equal to the input when no block was found.
	Remainder string

	// Payload is the leniently parsed JSON inside the block, or nil when
	// the block is absent or its content does not parse.
	Payload json.RawMessage

	// Found reports whether a complete block was present.
	Found bool

	// Err holds the parse failure when Found is true and Payload is nil.
	Err error
}

type tagPatterns struct {
	block *regexp.Regexp
	close *regexp.Regexp
	// dangling matches an opener followed by the start of a payload,
	// optionally fenced, or by the end of the text.
	dangling *regexp.Regexp
}

var patternCache sync.Map // tag -> *tagPatterns

func patternsFor(tag string) *tagPatterns {
	if p, ok := patternCache.Load(tag); ok {
		return p.(*tagPatterns)
	}
	q := regexp.QuoteMeta(tag)
	p := &tagPatterns{
		block:    regexp.MustCompile(`(?is)<\s*` + q + `\s*>(.*?)<\s*/\s*` + q + `\s*>`),
		close:    regexp.MustCompile(`(?i)<\s*/\s*` + q + `\s*>`),
		dangling: regexp.MustCompile("(?i)<\\s*" + q + "\\s*>\\s*(?:```[a-z]*\\s*)?(?:[{\\[]|$)"),
	}
	actual, _ := patternCache.LoadOrStore(tag, p)
	return actual.(*tagPatterns)
}

// ExtractBlock removes the first complete <tag>…</tag> block from text and
// parses its content. A block whose content does not parse is still
// removed. Text without a complete block is returned unchanged.
func ExtractBlock(text, tag string) Block {
	loc := patternsFor(tag).block.FindStringSubmatchIndex(text)
	if loc == nil {
		return Block{Remainder: text}
	}

	inner := text[loc[2]:loc[3]]
	b := Block{
		Remainder: joinAround(text[:loc[0]], text[loc[1]:]),
		Found:     true,
	}

	payload, err := ParseLenient(inner)
	if err != nil {
		b.Err = fmt.Errorf("parse <%s> block: %w", tag, err)
		return b
	}
	b.Payload = payload
	return b
}

// StripBlocks removes every remaining complete <tag>…</tag> block without
// parsing. Used after ExtractBlock so later duplicates never reach the
// student.
func StripBlocks(text, tag string) string {
	p := patternsFor(tag).block
	for {
		loc := p.FindStringIndex(text)
		if loc == nil {
			return text
		}
		text = joinAround(text[:loc[0]], text[loc[1]:])
	}
}

// TrimUnterminated drops a dangling opening tag and everything after it,
// which is what a reply cut off mid-payload looks like. Only an opener that
// starts a JSON payload or ends the text counts as dangling; prose that
// merely mentions the tag is returned unchanged.
func TrimUnterminated(text, tag string) string {
	p := patternsFor(tag)
	if p.block.MatchString(text) {
		return text
	}
	loc := p.dangling.FindStringIndex(text)
	if loc == nil {
		return text
	}
	return strings.TrimRight(text[:loc[0]], " \t\n")
}

// joinAround concatenates the text on both sides of a removed block,
// keeping a single separator so words do not fuse together.
func joinAround(before, after string) string {
	if before == "" || after == "" {
		return before + after
	}
	last := before[len(before)-1]
	first := after[0]
	if isSpace(last) || isSpace(first) {
		return before + after
	}
	return before + " " + after
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\n' || b == '\t' || b == '\r'
}

// Tidy removes every trace of tag from text that ExtractBlock left
// behind: later complete blocks, orphan closing delimiters, and a dangling
// opening delimiter with whatever follows it.
func Tidy(text, tag string) string {
	text = StripBlocks(text, tag)
	text = TrimUnterminated(text, tag)
	return patternsFor(tag).close.ReplaceAllString(text, "")
}
