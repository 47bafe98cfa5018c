package chart

import (
	"github.com/tidwall/gjson"
)

// geometrySpace is the normalized coordinate square polygons live in.
var geometrySpace = Range{Min: 0, Max: 100}

// maxGridCells caps fraction rectangle size.
const maxGridCells = 400

// Polygon is a labelled shape in the [0,100]² space.
type Polygon struct {
	Title    string
	Vertices []Datum
	Edges    [][2]int
	Stroke   string
	Fill     string
}

// FractionRect is a rows×cols grid with shaded cells.
type FractionRect struct {
	Title       string
	Rows, Cols  int
	Shaded      []int
	ShadedColor string
	EmptyColor  string
	BorderColor string
}

func (Polygon) Kind() Kind      { return KindPolygon }
func (FractionRect) Kind() Kind { return KindFractionRect }

func decodePolygon(r gjson.Result) (Request, error) {
	verts, err := points(r, "vertices", "points")
	if err != nil {
		return nil, err
	}
	if labels, ok := lookup(r, "labels", "vertexLabels"); ok && labels.IsArray() {
		for i, l := range labels.Array() {
			if i < len(verts) && verts[i].Label == "" {
				verts[i].Label = l.String()
			}
		}
	}

	var edges [][2]int
	if e, ok := lookup(r, "edges", "sides"); ok {
		if !e.IsArray() {
			return nil, invalidf("edges: expected an array")
		}
		for i, pair := range e.Array() {
			ends := pair.Array()
			if len(ends) != 2 {
				return nil, invalidf("edge %d: expected two vertex indices", i)
			}
			a, okA := toFloat(ends[0])
			b, okB := toFloat(ends[1])
			if !okA || !okB || a != float64(int(a)) || b != float64(int(b)) {
				return nil, invalidf("edge %d: non-integer index", i)
			}
			edges = append(edges, [2]int{int(a), int(b)})
		}
	}

	return Polygon{
		Title:    text(r, "", "title"),
		Vertices: verts,
		Edges:    edges,
		Stroke:   text(r, DefaultStroke, "style.stroke", "stroke", "strokeColor"),
		Fill:     text(r, DefaultFill, "style.fill", "fill", "fillColor"),
	}, nil
}

func decodeFractionRect(r gjson.Result) (Request, error) {
	num, hasNum := lookup(r, "numerator")
	den, hasDen := lookup(r, "denominator")

	defRows, defCols := 1, 0
	if hasDen {
		d, ok := toFloat(den)
		if !ok || d != float64(int(d)) {
			return nil, invalidf("denominator: not a whole number")
		}
		defCols = int(d)
	}
	rows, err := integer(r, defRows, "rows")
	if err != nil {
		return nil, err
	}
	cols, err := integer(r, defCols, "cols", "columns")
	if err != nil {
		return nil, err
	}

	var shaded []int
	if s, ok := lookup(r, "shaded", "shadedCells", "shaded_cells"); ok {
		if !s.IsArray() {
			return nil, invalidf("shaded: expected an array")
		}
		for i, v := range s.Array() {
			f, ok := toFloat(v)
			if !ok || f != float64(int(f)) {
				return nil, invalidf("shaded %d: non-integer index", i)
			}
			shaded = append(shaded, int(f))
		}
	} else if hasNum {
		n, ok := toFloat(num)
		if !ok || n != float64(int(n)) || n < 0 {
			return nil, invalidf("numerator: not a whole number")
		}
		if n > maxGridCells {
			return nil, invalidf("numerator: %g exceeds %d cells", n, maxGridCells)
		}
		for i := 0; i < int(n); i++ {
			shaded = append(shaded, i)
		}
	}

	return FractionRect{
		Title:       text(r, "", "title"),
		Rows:        rows,
		Cols:        cols,
		Shaded:      shaded,
		ShadedColor: text(r, DefaultShaded, "shadedColor", "colors.shaded"),
		EmptyColor:  text(r, DefaultEmpty, "emptyColor", "colors.empty"),
		BorderColor: text(r, DefaultBorder, "borderColor", "colors.border"),
	}, nil
}

func (p Polygon) synthesize() (*Series, error) {
	if len(p.Vertices) < 3 {
		return nil, invalidf("polygon: need at least 3 vertices, got %d", len(p.Vertices))
	}
	for i, v := range p.Vertices {
		if !geometrySpace.Contains(v.X) || !geometrySpace.Contains(v.Y) {
			return nil, invalidf("polygon: vertex %d (%g, %g) outside [0,100]", i, v.X, v.Y)
		}
	}
	for i, e := range p.Edges {
		if e[0] < 0 || e[0] >= len(p.Vertices) || e[1] < 0 || e[1] >= len(p.Vertices) {
			return nil, invalidf("polygon: edge %d references a missing vertex", i)
		}
	}

	var annotations []Annotation
	for _, v := range p.Vertices {
		if v.Label != "" {
			annotations = append(annotations, Annotation{X: v.X, Y: v.Y, Label: v.Label, Color: ColorPoint})
		}
	}

	return &Series{
		Kind:        KindPolygon,
		Title:       p.Title,
		Data:        p.Vertices,
		XDomain:     geometrySpace,
		YDomain:     geometrySpace,
		Annotations: annotations,
		Edges:       p.Edges,
		Style:       &Style{Stroke: p.Stroke, Fill: p.Fill},
	}, nil
}

func (f FractionRect) synthesize() (*Series, error) {
	if f.Rows < 1 || f.Cols < 1 {
		return nil, invalidf("fraction rectangle: rows and cols must be positive")
	}
	if f.Rows > maxGridCells || f.Cols > maxGridCells/f.Rows {
		return nil, invalidf("fraction rectangle: %dx%d grid exceeds %d cells", f.Rows, f.Cols, maxGridCells)
	}
	cells := f.Rows * f.Cols
	seen := make(map[int]bool, len(f.Shaded))
	for _, idx := range f.Shaded {
		if idx < 0 || idx >= cells {
			return nil, invalidf("fraction rectangle: shaded cell %d out of range", idx)
		}
		if seen[idx] {
			return nil, invalidf("fraction rectangle: shaded cell %d repeated", idx)
		}
		seen[idx] = true
	}

	shaded := f.Shaded
	if shaded == nil {
		shaded = []int{}
	}
	return &Series{
		Kind:    KindFractionRect,
		Title:   f.Title,
		Data:    []Datum{},
		XDomain: Range{Min: 0, Max: float64(f.Cols)},
		YDomain: Range{Min: 0, Max: float64(f.Rows)},
		Grid: &Grid{
			Rows:        f.Rows,
			Cols:        f.Cols,
			Shaded:      shaded,
			ShadedColor: f.ShadedColor,
			EmptyColor:  f.EmptyColor,
			BorderColor: f.BorderColor,
		},
	}, nil
}
