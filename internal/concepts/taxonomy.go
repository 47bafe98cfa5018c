package concepts

import (
	"fmt"
	"regexp"
	"strings"
)

// taxonomy holds the compiled concept table. Built once in init and
// read-only afterwards.
type taxonomy struct {
	concepts []Concept
	phrases  []phraseRule
	patterns []patternRule
	byTag    map[string]*Concept
}

type phraseRule struct {
	phrase string
	tag    Tag
}

type patternRule struct {
	re  *regexp.Regexp
	tag Tag
}

// tax is the package-level taxonomy, set by init() in seed.go.
var tax *taxonomy

// buildTaxonomy lowercases phrases and compiles patterns in seed order.
// It panics on a bad pattern or duplicate tag, which can only come from
// the seed table.
func buildTaxonomy(seed []Concept) *taxonomy {
	t := &taxonomy{
		concepts: seed,
		byTag:    make(map[string]*Concept, len(seed)),
	}
	for i := range seed {
		c := &seed[i]
		key := strings.ToLower(string(c.Tag))
		if _, dup := t.byTag[key]; dup {
			panic(fmt.Sprintf("concepts: duplicate tag %q", c.Tag))
		}
		t.byTag[key] = c
		for _, p := range c.Phrases {
			t.phrases = append(t.phrases, phraseRule{phrase: strings.ToLower(p), tag: c.Tag})
		}
		for _, p := range c.Patterns {
			t.patterns = append(t.patterns, patternRule{re: regexp.MustCompile(`(?i)` + p), tag: c.Tag})
		}
	}
	return t
}

// Lookup returns the taxonomy entry for tag, case-insensitively.
func Lookup(tag string) (Concept, bool) {
	c, ok := tax.byTag[strings.ToLower(strings.TrimSpace(tag))]
	if !ok {
		return Concept{}, false
	}
	return *c, true
}

// All returns every concept in seed order.
func All() []Concept {
	out := make([]Concept, len(tax.concepts))
	copy(out, tax.concepts)
	return out
}

// ByArea returns the concepts of one area in seed order.
func ByArea(a Area) []Concept {
	var out []Concept
	for _, c := range tax.concepts {
		if c.Area == a {
			out = append(out, c)
		}
	}
	return out
}
