package chart

import "math"

// Series is a synthesized chart ready for a renderer.
type Series struct {
	Kind        Kind         `json:"kind"`
	Title       string       `json:"title,omitempty"`
	Data        []Datum      `json:"data"`
	XDomain     Range        `json:"xDomain"`
	YDomain     Range        `json:"yDomain"`
	Annotations []Annotation `json:"annotations,omitempty"`
	XLabel      string       `json:"xLabel,omitempty"`
	YLabel      string       `json:"yLabel,omitempty"`

	// Edges joins polygon vertices by index.
	Edges [][2]int `json:"edges,omitempty"`
	// Style applies to polygons.
	Style *Style `json:"style,omitempty"`
	// Grid describes a fraction rectangle.
	Grid *Grid `json:"grid,omitempty"`
}

// Datum is one plotted point or category. Categorical kinds put the
// category in Label and its position in X.
type Datum struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label,omitempty"`
}

// Range is a closed interval.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies in r.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Annotation marks a notable point.
type Annotation struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label"`
	Color string  `json:"color,omitempty"`
}

// Style holds polygon stroke and fill.
type Style struct {
	Stroke string `json:"stroke"`
	Fill   string `json:"fill"`
}

// Grid describes a rows×cols rectangle with shaded cells, indexed
// row-major from 0.
type Grid struct {
	Rows        int    `json:"rows"`
	Cols        int    `json:"cols"`
	Shaded      []int  `json:"shaded"`
	ShadedColor string `json:"shadedColor"`
	EmptyColor  string `json:"emptyColor"`
	BorderColor string `json:"borderColor"`
}

// Annotation and style defaults.
const (
	ColorIntercept = "#dc2626"
	ColorVertex    = "#7c3aed"
	ColorPoint     = "#2563eb"

	DefaultStroke = "#1d4ed8"
	DefaultFill   = "rgba(37, 99, 235, 0.15)"

	DefaultShaded = "#f59e0b"
	DefaultEmpty  = "#ffffff"
	DefaultBorder = "#1f2937"
)

// padRange widens [lo, hi] on both sides by 10% of its span, or by at
// least minPad.
func padRange(lo, hi, minPad float64) Range {
	pad := math.Max((hi-lo)*0.1, minPad)
	return Range{Min: lo - pad, Max: hi + pad}
}

// span returns the min and max of vals.
func span(vals ...float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// check verifies that every value is finite and that the domains enclose
// all plotted data. Synthesizers run it before returning.
func (s *Series) check() error {
	if !finite(s.XDomain.Min, s.XDomain.Max, s.YDomain.Min, s.YDomain.Max) {
		return invalidf("non-finite domain")
	}
	if s.XDomain.Min > s.XDomain.Max || s.YDomain.Min > s.YDomain.Max {
		return invalidf("inverted domain")
	}
	for _, d := range s.Data {
		if !finite(d.X, d.Y) {
			return invalidf("non-finite data point")
		}
		if !s.XDomain.Contains(d.X) || !s.YDomain.Contains(d.Y) {
			return invalidf("data point (%g, %g) outside domain", d.X, d.Y)
		}
	}
	for _, a := range s.Annotations {
		if !finite(a.X, a.Y) {
			return invalidf("non-finite annotation")
		}
	}
	return nil
}
