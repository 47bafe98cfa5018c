// Package chart turns symbolic chart requests emitted by the model into
// concrete, renderable series with fitted display domains.
package chart

import "strings"

// Kind identifies a chart variant.
type Kind string

const (
	KindLinear        Kind = "linear"
	KindQuadratic     Kind = "quadratic"
	KindAbsoluteValue Kind = "absolute-value"
	KindExponential   Kind = "exponential"
	KindBar           Kind = "bar"
	KindHistogram     Kind = "histogram"
	KindScatter       Kind = "scatter"
	KindPie           Kind = "pie"
	KindPolygon       Kind = "polygon"
	KindFractionRect  Kind = "fraction-rectangle"
	KindNumberLine    Kind = "number-line"
)

// kindAliases maps every accepted spelling to its Kind. Built once; never
// written after init.
var kindAliases = map[string]Kind{}

var kindSeed = []struct {
	Kind    Kind
	Aliases []string
}{
	{KindLinear, []string{"line", "linear-function", "straight-line", "linear-equation"}},
	{KindQuadratic, []string{"parabola", "quadratic-function"}},
	{KindAbsoluteValue, []string{"absolute", "abs", "absolutevalue", "absolute-value-function", "v-shape"}},
	{KindExponential, []string{"exponential-function", "exp", "exponential-growth", "exponential-decay"}},
	{KindBar, []string{"categorical", "bar-chart", "bar-graph", "column"}},
	{KindHistogram, []string{"frequency", "frequency-histogram", "histogram-chart"}},
	{KindScatter, []string{"scatter-plot", "scatterplot", "points"}},
	{KindPie, []string{"proportion", "pie-chart", "circle-graph"}},
	{KindPolygon, []string{"geometry", "shape", "geometric", "geometric-polygon"}},
	{KindFractionRect, []string{"fraction", "fractional-rectangle", "fraction-bar", "area-model", "fraction-rect"}},
	{KindNumberLine, []string{"numberline"}},
}

func init() {
	for _, k := range kindSeed {
		kindAliases[string(k.Kind)] = k.Kind
		for _, a := range k.Aliases {
			kindAliases[a] = k.Kind
		}
	}
}

// ParseKind normalizes s and checks it against the allow-list.
func ParseKind(s string) (Kind, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", "-", " ", "-").Replace(norm)
	k, ok := kindAliases[norm]
	return k, ok
}

// Kinds returns the allow-listed kinds in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kindSeed))
	for i, k := range kindSeed {
		out[i] = k.Kind
	}
	return out
}
