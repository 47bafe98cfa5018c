package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/abhisek/tutorcore/internal/chart"
)

const (
	plotWidth  = 48
	plotHeight = 14
	barWidth   = 30
)

// Plot draws s as plain text. Nil renders nothing.
func Plot(s *chart.Series) string {
	if s == nil {
		return ""
	}
	var body string
	switch s.Kind {
	case chart.KindBar, chart.KindHistogram:
		body = bars(s)
	case chart.KindPie:
		body = slices(s)
	case chart.KindFractionRect:
		body = grid(s.Grid)
	case chart.KindPolygon:
		body = canvas(s, true)
	default:
		body = canvas(s, false)
	}
	if s.Title != "" {
		body = s.Title + "\n" + body
	}
	return strings.TrimRight(body, "\n")
}

// canvas plots points on a character grid scaled to the series domains,
// with axes where zero is in range. Polygons also draw their edges.
func canvas(s *chart.Series, edges bool) string {
	cells := make([][]byte, plotHeight)
	for r := range cells {
		cells[r] = []byte(strings.Repeat(" ", plotWidth))
	}

	col := func(x float64) int { return scale(x, s.XDomain, plotWidth) }
	row := func(y float64) int { return plotHeight - 1 - scale(y, s.YDomain, plotHeight) }
	set := func(x, y float64, c byte) {
		if !s.XDomain.Contains(x) || !s.YDomain.Contains(y) {
			return
		}
		cells[row(y)][col(x)] = c
	}

	if s.XDomain.Contains(0) {
		c := col(0)
		for r := range cells {
			cells[r][c] = '|'
		}
	}
	if s.YDomain.Contains(0) {
		r := row(0)
		for c := range cells[r] {
			if cells[r][c] == '|' {
				cells[r][c] = '+'
			} else {
				cells[r][c] = '-'
			}
		}
	}

	if edges {
		for _, e := range s.Edges {
			a, b := s.Data[e[0]], s.Data[e[1]]
			for i := 0; i <= plotWidth; i++ {
				t := float64(i) / plotWidth
				set(a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t, '.')
			}
		}
	}
	for _, d := range s.Data {
		set(d.X, d.Y, '*')
	}
	for _, a := range s.Annotations {
		set(a.X, a.Y, 'o')
	}

	var b strings.Builder
	fmt.Fprintf(&b, "y: [%s, %s]\n", num(s.YDomain.Min), num(s.YDomain.Max))
	for _, line := range cells {
		b.WriteString(strings.TrimRight(string(line), " "))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "x: [%s, %s]\n", num(s.XDomain.Min), num(s.XDomain.Max))
	for _, a := range s.Annotations {
		fmt.Fprintf(&b, "o %s (%s, %s)\n", a.Label, num(a.X), num(a.Y))
	}
	return b.String()
}

func bars(s *chart.Series) string {
	peak := 0.0
	labelW := 0
	for _, d := range s.Data {
		peak = math.Max(peak, math.Abs(d.Y))
		labelW = max(labelW, len(d.Label))
	}
	var b strings.Builder
	for _, d := range s.Data {
		n := 0
		if peak > 0 {
			n = int(math.Round(math.Abs(d.Y) / peak * barWidth))
		}
		fmt.Fprintf(&b, "%-*s | %s %s\n", labelW, d.Label, strings.Repeat("#", n), num(d.Y))
	}
	return b.String()
}

func slices(s *chart.Series) string {
	total := 0.0
	labelW := 0
	for _, d := range s.Data {
		total += d.Y
		labelW = max(labelW, len(d.Label))
	}
	var b strings.Builder
	for _, d := range s.Data {
		pct := 0.0
		if total > 0 {
			pct = d.Y / total * 100
		}
		fmt.Fprintf(&b, "%-*s %5.1f%% %s\n", labelW, d.Label, pct, strings.Repeat("#", int(math.Round(pct/100*barWidth))))
	}
	return b.String()
}

func grid(g *chart.Grid) string {
	if g == nil {
		return ""
	}
	shaded := make(map[int]bool, len(g.Shaded))
	for _, i := range g.Shaded {
		shaded[i] = true
	}
	var b strings.Builder
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if shaded[r*g.Cols+c] {
				b.WriteString("[#]")
			} else {
				b.WriteString("[ ]")
			}
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "%d/%d shaded\n", len(g.Shaded), g.Rows*g.Cols)
	return b.String()
}

// scale maps v in r onto 0..n-1.
func scale(v float64, r chart.Range, n int) int {
	span := r.Max - r.Min
	if span <= 0 {
		return 0
	}
	i := int(math.Round((v - r.Min) / span * float64(n-1)))
	return min(max(i, 0), n-1)
}

func num(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
