package chart

import (
	"math"

	"github.com/tidwall/gjson"
)

const minDataPadding = 1.0

// numberLineBand is the fixed secondary-axis range for number lines.
var numberLineBand = Range{Min: -1, Max: 1}

// Bar is a categorical chart.
type Bar struct {
	Title          string
	XLabel, YLabel string
	Data           []Datum
}

// Histogram is a frequency chart over labelled intervals.
type Histogram struct {
	Title          string
	XLabel, YLabel string
	Data           []Datum
}

// Scatter is a set of (x, y) points.
type Scatter struct {
	Title          string
	XLabel, YLabel string
	Data           []Datum
}

// Pie is a set of non-negative proportions.
type Pie struct {
	Title string
	Data  []Datum
}

// NumberLine places scalars on a horizontal axis. It does not model
// inequality shading or open/closed endpoints.
type NumberLine struct {
	Title  string
	Values []Datum
	Domain *Range
}

func (Bar) Kind() Kind        { return KindBar }
func (Histogram) Kind() Kind  { return KindHistogram }
func (Scatter) Kind() Kind    { return KindScatter }
func (Pie) Kind() Kind        { return KindPie }
func (NumberLine) Kind() Kind { return KindNumberLine }

var (
	categoryItems  = []string{"data", "items", "categories", "bars"}
	categoryLabels = []string{"label", "name", "category"}
	categoryValues = []string{"value", "count", "y", "amount"}
	labelArrays    = []string{"labels", "categoryLabels"}
	valueArrays    = []string{"values", "counts", "frequencies"}

	binItems  = []string{"data", "bins", "items"}
	binLabels = []string{"label", "interval", "range", "bin"}
	binValues = []string{"frequency", "count", "value", "y"}

	sliceItems  = []string{"data", "slices", "sectors", "items"}
	sliceValues = []string{"value", "percent", "percentage", "amount", "count"}
)

func decodeBar(r gjson.Result) (Request, error) {
	data, err := labelled(r, categoryItems, categoryLabels, categoryValues, labelArrays, valueArrays)
	if err != nil {
		return nil, err
	}
	return Bar{
		Title:  text(r, "", "title"),
		XLabel: text(r, "Category", "xLabel", "x_label", "xAxisLabel"),
		YLabel: text(r, "Value", "yLabel", "y_label", "yAxisLabel"),
		Data:   data,
	}, nil
}

func decodeHistogram(r gjson.Result) (Request, error) {
	data, err := labelled(r, binItems, binLabels, binValues, append([]string{"intervals"}, labelArrays...), valueArrays)
	if err != nil {
		return nil, err
	}
	return Histogram{
		Title:  text(r, "", "title"),
		XLabel: text(r, "Interval", "xLabel", "x_label", "xAxisLabel"),
		YLabel: text(r, "Frequency", "yLabel", "y_label", "yAxisLabel"),
		Data:   data,
	}, nil
}

func decodeScatter(r gjson.Result) (Request, error) {
	data, err := points(r, "points", "data")
	if err != nil {
		return nil, err
	}
	return Scatter{
		Title:  text(r, "", "title"),
		XLabel: text(r, "x", "xLabel", "x_label", "xAxisLabel"),
		YLabel: text(r, "y", "yLabel", "y_label", "yAxisLabel"),
		Data:   data,
	}, nil
}

func decodePie(r gjson.Result) (Request, error) {
	data, err := labelled(r, sliceItems, categoryLabels, sliceValues, labelArrays, valueArrays)
	if err != nil {
		return nil, err
	}
	return Pie{Title: text(r, "", "title"), Data: data}, nil
}

func decodeNumberLine(r gjson.Result) (Request, error) {
	items, ok := lookup(r, "points", "values", "numbers", "data")
	if !ok || !items.IsArray() {
		return nil, invalidf("number line needs an array of values")
	}
	var values []Datum
	for i, it := range items.Array() {
		v, label := it, ""
		if it.IsObject() {
			var found bool
			if v, found = lookup(it, "value", "x"); !found {
				return nil, invalidf("point %d: missing value", i)
			}
			label = text(it, "", "label")
		}
		f, ok := toFloat(v)
		if !ok {
			return nil, invalidf("point %d: non-numeric value", i)
		}
		values = append(values, Datum{X: f, Label: label})
	}

	nl := NumberLine{Title: text(r, "", "title"), Values: values}
	if _, ok := lookup(r, "domain", "xDomain", "xRange", "x_range", "xMin", "x_min", "minX", "xMax", "x_max", "maxX"); ok {
		// A single given bound is paired with the padded value span.
		lo, hi := span(Xs(values)...)
		d, err := domain(r, padRange(lo, hi, minDataPadding))
		if err != nil {
			return nil, err
		}
		nl.Domain = &d
	}
	return nl, nil
}

// categorical lays out labelled values with a y-range covering zero.
func categorical(kind Kind, title, xl, yl string, data []Datum) (*Series, error) {
	if len(data) == 0 {
		return nil, invalidf("%s: no data", kind)
	}
	ys := make([]float64, 0, len(data)+1)
	ys = append(ys, 0)
	for _, d := range data {
		ys = append(ys, d.Y)
	}
	lo, hi := span(ys...)
	yd := padRange(lo, hi, minDataPadding)
	if lo >= 0 {
		yd.Min = 0
	}
	return &Series{
		Kind:    kind,
		Title:   title,
		Data:    data,
		XDomain: Range{Min: -0.5, Max: float64(len(data)) - 0.5},
		YDomain: yd,
		XLabel:  xl,
		YLabel:  yl,
	}, nil
}

func (b Bar) synthesize() (*Series, error) {
	return categorical(KindBar, b.Title, b.XLabel, b.YLabel, b.Data)
}

func (h Histogram) synthesize() (*Series, error) {
	for _, d := range h.Data {
		if d.Y < 0 {
			return nil, invalidf("histogram: negative frequency for %q", d.Label)
		}
	}
	return categorical(KindHistogram, h.Title, h.XLabel, h.YLabel, h.Data)
}

func (s Scatter) synthesize() (*Series, error) {
	if len(s.Data) == 0 {
		return nil, invalidf("scatter: no points")
	}
	xs := make([]float64, len(s.Data))
	ys := make([]float64, len(s.Data))
	for i, d := range s.Data {
		xs[i], ys[i] = d.X, d.Y
	}
	xlo, xhi := span(xs...)
	ylo, yhi := span(ys...)
	return &Series{
		Kind:    KindScatter,
		Title:   s.Title,
		Data:    s.Data,
		XDomain: padRange(xlo, xhi, minDataPadding),
		YDomain: padRange(ylo, yhi, minDataPadding),
		XLabel:  s.XLabel,
		YLabel:  s.YLabel,
	}, nil
}

func (p Pie) synthesize() (*Series, error) {
	if len(p.Data) == 0 {
		return nil, invalidf("pie: no slices")
	}
	var total float64
	for _, d := range p.Data {
		if d.Y < 0 {
			return nil, invalidf("pie: negative slice %q", d.Label)
		}
		total += d.Y
	}
	if total <= 0 {
		return nil, invalidf("pie: slices sum to zero")
	}
	_, hi := span(Ys(p.Data)...)
	return &Series{
		Kind:    KindPie,
		Title:   p.Title,
		Data:    p.Data,
		XDomain: Range{Min: -0.5, Max: float64(len(p.Data)) - 0.5},
		YDomain: Range{Min: 0, Max: hi},
	}, nil
}

func (n NumberLine) synthesize() (*Series, error) {
	if len(n.Values) == 0 {
		return nil, invalidf("number line: no values")
	}
	lo, hi := span(Xs(n.Values)...)
	xd := padRange(lo, hi, minDataPadding)
	if n.Domain != nil {
		xd = Range{Min: math.Min(n.Domain.Min, lo), Max: math.Max(n.Domain.Max, hi)}
	}

	data := make([]Datum, len(n.Values))
	annotations := make([]Annotation, 0, len(n.Values))
	for i, v := range n.Values {
		data[i] = Datum{X: v.X, Y: 0, Label: v.Label}
		if v.Label != "" {
			annotations = append(annotations, Annotation{X: v.X, Y: 0, Label: v.Label, Color: ColorPoint})
		}
	}
	return &Series{
		Kind:        KindNumberLine,
		Title:       n.Title,
		Data:        data,
		XDomain:     xd,
		YDomain:     numberLineBand,
		Annotations: annotations,
	}, nil
}

// Xs returns the x values of data.
func Xs(data []Datum) []float64 {
	out := make([]float64, len(data))
	for i, d := range data {
		out[i] = d.X
	}
	return out
}

// Ys returns the y values of data.
func Ys(data []Datum) []float64 {
	out := make([]float64, len(data))
	for i, d := range data {
		out[i] = d.Y
	}
	return out
}
