package sanitize

import (
	"regexp"
	"strings"
)

// rule is one ordered repair step. Content rules report their label when
// they change the text; layout rules (whitespace, trim) never do.
type rule struct {
	Label   string
	Content bool
	Apply   func(string) string
}

// Rule labels reported in diagnostics.
const (
	RuleSentenceSpacing = "sentence-spacing"
	RuleGlyphs          = "glyphs"
	RuleGluedWords      = "glued-words"
	RuleDuplicateWord   = "duplicate-word"
	RuleWhitespace      = "whitespace"
	RuleTrim            = "trim"
)

var (
	digitGluedToCapital = regexp.MustCompile(`(\d)\.([A-Z])`)

	// En dash or em dash used as a minus between operands.
	dashBetweenDigits = regexp.MustCompile(`(\d)\s?[\x{2013}\x{2014}]\s?(\d)`)

	glyphReplacer = strings.NewReplacer(
		"−", "-", // minus sign
		"﹣", "-", // small hyphen-minus
		"－", "-", // fullwidth hyphen-minus
		"➖", "-", // heavy minus
		"＋", "+", // fullwidth plus
		"➕", "+", // heavy plus
		"＝", "=", // fullwidth equals
		"∗", "×", // asterisk operator
		"✕", "×", // multiplication x
		"✖", "×", // heavy multiplication x
		"⨯", "×", // vector cross product
		"⁄", "/", // fraction slash
	)

	// Curriculum nouns the model tends to glue to the following verb.
	gluedVerb = regexp.MustCompile(`(?i)\b(` + strings.Join([]string{
		"intercept", "slope", "vertex", "axis", "area", "perimeter", "volume",
		"hypotenuse", "angle", "angles", "side", "sides", "base", "height",
		"mean", "median", "mode", "range", "sum", "product", "difference",
		"quotient", "answer", "value", "solution", "result", "total", "ratio",
		"rate", "probability", "function", "equation", "graph", "triangle",
		"radius", "diameter", "circumference", "thesis", "claim",
	}, "|") + `)(is|are|equals|was|of)(\d|[^A-Za-z]|$)`)

	gluedArticle = regexp.MustCompile(`\b(of|in|is|to|on|at|for|from)(the)\b`)

	lettersOnly = regexp.MustCompile(`[A-Za-z]{6,}`)

	horizontalSpace = regexp.MustCompile(`[ \t\f\v\x{00A0}\x{2009}\x{202F}]+`)
	spaceAroundLF   = regexp.MustCompile(` ?\r?\n ?`)
	blankLineRuns   = regexp.MustCompile(`\n{3,}`)
)

// genuineReduplications are real words that look like a doubled token.
var genuineReduplications = map[string]bool{
	"murmur": true, "tartar": true, "couscous": true, "cancan": true,
	"bonbon": true, "tsetse": true, "beriberi": true, "pawpaw": true,
	"pompom": true, "tomtom": true, "booboo": true, "chowchow": true,
	"mahimahi": true, "dumdum": true, "froufrou": true, "muumuu": true,
	"grisgris": true, "bulbul": true,
}

// rules is the fixed repair pipeline. Order matters: glyph normalization
// happens before the glued-word pass, which relies on ASCII punctuation.
var rules = []rule{
	{Label: RuleSentenceSpacing, Content: true, Apply: func(s string) string {
		return digitGluedToCapital.ReplaceAllString(s, "$1. $2")
	}},
	{Label: RuleGlyphs, Content: true, Apply: func(s string) string {
		s = glyphReplacer.Replace(s)
		return dashBetweenDigits.ReplaceAllString(s, "$1-$2")
	}},
	{Label: RuleGluedWords, Content: true, Apply: func(s string) string {
		s = gluedVerb.ReplaceAllStringFunc(s, splitGluedVerb)
		return gluedArticle.ReplaceAllString(s, "$1 $2")
	}},
	{Label: RuleDuplicateWord, Content: true, Apply: func(s string) string {
		return lettersOnly.ReplaceAllStringFunc(s, collapseRepeat)
	}},
	{Label: RuleWhitespace, Apply: func(s string) string {
		s = horizontalSpace.ReplaceAllString(s, " ")
		s = spaceAroundLF.ReplaceAllString(s, "\n")
		return blankLineRuns.ReplaceAllString(s, "\n\n")
	}},
	{Label: RuleTrim, Apply: strings.TrimSpace},
}

// splitGluedVerb turns "interceptis10" into "intercept is 10".
func splitGluedVerb(m string) string {
	sub := gluedVerb.FindStringSubmatch(m)
	if sub == nil {
		return m
	}
	out := sub[1] + " " + sub[2]
	tail := sub[3]
	switch {
	case tail == "":
	case tail[0] >= '0' && tail[0] <= '9':
		out += " " + tail
	default:
		out += tail
	}
	return out
}

// collapseRepeat returns the base word when tok is that word repeated
// back-to-back, e.g. "slopeslope" -> "slope".
func collapseRepeat(tok string) string {
	lower := strings.ToLower(tok)
	if genuineReduplications[lower] {
		return tok
	}
	n := len(lower)
	for p := 3; p <= n/2; p++ {
		if n%p != 0 {
			continue
		}
		if strings.Repeat(lower[:p], n/p) == lower {
			return tok[:p]
		}
	}
	return tok
}
