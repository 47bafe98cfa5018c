package chart

import (
	"math"
	"sort"

	"github.com/tidwall/gjson"
)

// Function chart defaults.
var (
	defaultXDomain = Range{Min: -5, Max: 5}

	absoluteXDomain = Range{Min: -10, Max: 10}
	absoluteYDomain = Range{Min: -10, Max: 10}

	exponentialXDomain = Range{Min: -4, Max: 4}
	exponentialYDomain = Range{Min: -1, Max: 20}
)

const (
	linearIntervals    = 20
	curveIntervals     = 40
	minFunctionPadding = 2.0
)

// Linear is y = M·x + B.
type Linear struct {
	M, B   float64
	Domain Range
	Title  string
}

// Quadratic is y = A·x² + B·x + C.
type Quadratic struct {
	A, B, C float64
	Domain  Range
	Title   string
}

// AbsoluteValue is y = A·|x − H| + K over a fixed window.
type AbsoluteValue struct {
	A, H, K float64
	Title   string
}

// Exponential is y = Base^x over a fixed window.
type Exponential struct {
	Base  float64
	Title string
}

func (Linear) Kind() Kind        { return KindLinear }
func (Quadratic) Kind() Kind     { return KindQuadratic }
func (AbsoluteValue) Kind() Kind { return KindAbsoluteValue }
func (Exponential) Kind() Kind   { return KindExponential }

func decodeLinear(r gjson.Result) (Request, error) {
	m, err := number(r, 1, "m", "slope", "coefficients.m")
	if err != nil {
		return nil, err
	}
	b, err := number(r, 0, "b", "intercept", "yIntercept", "y_intercept", "coefficients.b")
	if err != nil {
		return nil, err
	}
	d, err := domain(r, defaultXDomain)
	if err != nil {
		return nil, err
	}
	return Linear{M: m, B: b, Domain: d, Title: text(r, "", "title")}, nil
}

func decodeQuadratic(r gjson.Result) (Request, error) {
	a, err := number(r, 1, "a", "coefficients.a", "coefficients.0")
	if err != nil {
		return nil, err
	}
	b, err := number(r, 0, "b", "coefficients.b", "coefficients.1")
	if err != nil {
		return nil, err
	}
	c, err := number(r, 0, "c", "coefficients.c", "coefficients.2")
	if err != nil {
		return nil, err
	}
	d, err := domain(r, defaultXDomain)
	if err != nil {
		return nil, err
	}
	return Quadratic{A: a, B: b, C: c, Domain: d, Title: text(r, "", "title")}, nil
}

func decodeAbsoluteValue(r gjson.Result) (Request, error) {
	a, err := number(r, 1, "a", "coefficients.a")
	if err != nil {
		return nil, err
	}
	h, err := number(r, 0, "h", "coefficients.h")
	if err != nil {
		return nil, err
	}
	k, err := number(r, 0, "k", "coefficients.k")
	if err != nil {
		return nil, err
	}
	return AbsoluteValue{A: a, H: h, K: k, Title: text(r, "", "title")}, nil
}

func decodeExponential(r gjson.Result) (Request, error) {
	base, err := number(r, 2, "base", "b", "coefficients.base")
	if err != nil {
		return nil, err
	}
	return Exponential{Base: base, Title: text(r, "", "title")}, nil
}

// sampleXs returns n+1 evenly spaced xs over d plus any extra xs that fall
// inside d, sorted and de-duplicated.
func sampleXs(d Range, n int, extra ...float64) []float64 {
	step := (d.Max - d.Min) / float64(n)
	xs := make([]float64, 0, n+1+len(extra))
	for i := 0; i <= n; i++ {
		x := d.Min + float64(i)*step
		if i == n {
			x = d.Max
		}
		xs = append(xs, x)
	}
	for _, e := range extra {
		if d.Contains(e) {
			xs = append(xs, e)
		}
	}
	sort.Float64s(xs)

	out := xs[:0]
	for i, x := range xs {
		if math.Abs(x) < 1e-12 {
			x = 0
		}
		if i > 0 && math.Abs(x-out[len(out)-1]) < 1e-9 {
			continue
		}
		out = append(out, x)
	}
	return out
}

// includeZero widens d so the y-intercept is always plotted.
func includeZero(d Range) Range {
	return Range{Min: math.Min(d.Min, 0), Max: math.Max(d.Max, 0)}
}

func (l Linear) synthesize() (*Series, error) {
	d := includeZero(l.Domain)
	f := func(x float64) float64 { return l.M*x + l.B }

	data := make([]Datum, 0, linearIntervals+2)
	for _, x := range sampleXs(d, linearIntervals, 0) {
		data = append(data, Datum{X: x, Y: f(x)})
	}

	intercept := Annotation{X: 0, Y: l.B, Label: "y-intercept", Color: ColorIntercept}
	lo, hi := span(f(d.Min), f(d.Max), intercept.Y)
	if !finite(lo, hi) {
		return nil, invalidf("linear values overflow")
	}

	return &Series{
		Kind:        KindLinear,
		Title:       l.Title,
		Data:        data,
		XDomain:     d,
		YDomain:     padRange(lo, hi, minFunctionPadding),
		Annotations: []Annotation{intercept},
		XLabel:      "x",
		YLabel:      "y",
	}, nil
}

// Vertex returns the turning point of the parabola.
func (q Quadratic) Vertex() (float64, float64) {
	x := -q.B / (2 * q.A)
	return x, q.C - q.B*q.B/(4*q.A)
}

func (q Quadratic) synthesize() (*Series, error) {
	if q.A == 0 {
		return nil, invalidf("quadratic with a = 0")
	}
	d := includeZero(q.Domain)
	f := func(x float64) float64 { return q.A*x*x + q.B*x + q.C }
	vx, vy := q.Vertex()

	data := make([]Datum, 0, curveIntervals+3)
	for _, x := range sampleXs(d, curveIntervals, 0, vx) {
		data = append(data, Datum{X: x, Y: f(x)})
	}

	var annotations []Annotation
	ys := []float64{f(d.Min), f(d.Max), q.C}
	if d.Contains(vx) {
		ys = append(ys, vy)
		annotations = append(annotations, Annotation{X: vx, Y: vy, Label: "vertex", Color: ColorVertex})
	}
	annotations = append(annotations, Annotation{X: 0, Y: q.C, Label: "y-intercept", Color: ColorIntercept})

	lo, hi := span(ys...)
	if !finite(lo, hi, vx, vy) {
		return nil, invalidf("quadratic values overflow")
	}

	return &Series{
		Kind:        KindQuadratic,
		Title:       q.Title,
		Data:        data,
		XDomain:     d,
		YDomain:     padRange(lo, hi, minFunctionPadding),
		Annotations: annotations,
		XLabel:      "x",
		YLabel:      "y",
	}, nil
}

func (a AbsoluteValue) synthesize() (*Series, error) {
	f := func(x float64) float64 { return a.A*math.Abs(x-a.H) + a.K }

	var data []Datum
	for _, x := range sampleXs(absoluteXDomain, curveIntervals, a.H, 0) {
		if y := f(x); absoluteYDomain.Contains(y) {
			data = append(data, Datum{X: x, Y: y})
		}
	}
	if len(data) == 0 {
		return nil, invalidf("absolute value graph lies outside the viewing window")
	}

	var annotations []Annotation
	if absoluteXDomain.Contains(a.H) && absoluteYDomain.Contains(a.K) {
		annotations = append(annotations, Annotation{X: a.H, Y: a.K, Label: "vertex", Color: ColorVertex})
	}
	if y0 := f(0); absoluteYDomain.Contains(y0) {
		annotations = append(annotations, Annotation{X: 0, Y: y0, Label: "y-intercept", Color: ColorIntercept})
	}

	return &Series{
		Kind:        KindAbsoluteValue,
		Title:       a.Title,
		Data:        data,
		XDomain:     absoluteXDomain,
		YDomain:     absoluteYDomain,
		Annotations: annotations,
		XLabel:      "x",
		YLabel:      "y",
	}, nil
}

func (e Exponential) synthesize() (*Series, error) {
	if e.Base <= 0 || e.Base == 1 {
		return nil, invalidf("exponential base must be positive and not 1, got %g", e.Base)
	}

	var data []Datum
	for _, x := range sampleXs(exponentialXDomain, curveIntervals, 0) {
		if y := math.Pow(e.Base, x); exponentialYDomain.Contains(y) {
			data = append(data, Datum{X: x, Y: y})
		}
	}

	return &Series{
		Kind:        KindExponential,
		Title:       e.Title,
		Data:        data,
		XDomain:     exponentialXDomain,
		YDomain:     exponentialYDomain,
		Annotations: []Annotation{{X: 0, Y: 1, Label: "y-intercept", Color: ColorIntercept}},
		XLabel:      "x",
		YLabel:      "y",
	}, nil
}
