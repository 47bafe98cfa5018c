package concepts

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Extract returns the concepts text touches, at most MaxTags, in match
// order: phrase hits first, then pattern hits. A non-empty primaryTopic
// not already present is put at the front when there is room.
func Extract(text, primaryTopic string) []Tag {
	return tax.extract(text, primaryTopic)
}

func (t *taxonomy) extract(text, primaryTopic string) []Tag {
	lower := strings.ToLower(text)
	seen := make(map[string]bool)
	var tags []Tag

	add := func(tag Tag) {
		key := strings.ToLower(string(tag))
		if seen[key] {
			return
		}
		seen[key] = true
		tags = append(tags, tag)
	}

	for _, r := range t.phrases {
		if containsAtWordStart(lower, r.phrase) {
			add(r.tag)
		}
	}
	for _, r := range t.patterns {
		if r.re.MatchString(text) {
			add(r.tag)
		}
	}

	if len(tags) > MaxTags {
		tags = tags[:MaxTags]
	}

	topic := strings.TrimSpace(primaryTopic)
	if topic == "" || containsFold(tags, topic) {
		return tags
	}
	if len(tags) < MaxTags {
		tags = append([]Tag{Tag(topic)}, tags...)
	}
	return tags
}

// containsAtWordStart reports whether phrase occurs in s beginning at a
// word boundary, so "ratio" does not match inside "operation".
func containsAtWordStart(s, phrase string) bool {
	for off := 0; off <= len(s); {
		i := strings.Index(s[off:], phrase)
		if i < 0 {
			return false
		}
		at := off + i
		if at == 0 {
			return true
		}
		prev, _ := utf8.DecodeLastRuneInString(s[:at])
		if !unicode.IsLetter(prev) && !unicode.IsDigit(prev) {
			return true
		}
		off = at + 1
	}
	return false
}

func containsFold(tags []Tag, s string) bool {
	for _, t := range tags {
		if strings.EqualFold(string(t), s) {
			return true
		}
	}
	return false
}
