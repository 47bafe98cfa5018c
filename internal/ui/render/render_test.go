package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/tutorcore/internal/chart"
	"github.com/abhisek/tutorcore/internal/turn"
)

func synth(t *testing.T, raw string) *chart.Series {
	t.Helper()
	s := chart.Synthesize(json.RawMessage(raw))
	if s == nil {
		t.Fatalf("chart %s did not synthesize", raw)
	}
	return s
}

func TestPlot_Nil(t *testing.T) {
	if got := Plot(nil); got != "" {
		t.Fatalf("expected empty plot, got %q", got)
	}
}

func TestPlot_LinearHasAxesAndIntercept(t *testing.T) {
	out := Plot(synth(t, `{"kind":"linear","m":2,"b":1}`))
	if !strings.Contains(out, "+") {
		t.Errorf("expected axis crossing in plot:\n%s", out)
	}
	if !strings.Contains(out, "o ") {
		t.Errorf("expected intercept annotation legend:\n%s", out)
	}
	if !strings.HasPrefix(out, "y: [") {
		t.Errorf("expected y range header:\n%s", out)
	}
}

func TestPlot_BarsScaleToPeak(t *testing.T) {
	out := Plot(synth(t, `{"kind":"bar","labels":["Mon","Tue"],"values":[2,4]}`))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 bars, got:\n%s", out)
	}
	if strings.Count(lines[1], "#") != barWidth || strings.Count(lines[0], "#") != barWidth/2 {
		t.Errorf("bars not scaled:\n%s", out)
	}
}

func TestPlot_FractionGrid(t *testing.T) {
	out := Plot(synth(t, `{"kind":"fraction-rectangle","numerator":3,"denominator":4}`))
	if strings.Count(out, "[#]") != 3 || strings.Count(out, "[ ]") != 1 {
		t.Errorf("unexpected grid:\n%s", out)
	}
	if !strings.Contains(out, "3/4 shaded") {
		t.Errorf("missing shaded count:\n%s", out)
	}
}

func TestPlot_Pie(t *testing.T) {
	out := Plot(synth(t, `{"kind":"pie","labels":["a","b"],"values":[1,3]}`))
	if !strings.Contains(out, "25.0%") || !strings.Contains(out, "75.0%") {
		t.Errorf("unexpected pie:\n%s", out)
	}
}

func TestReply_IncludesQuestionAndConcepts(t *testing.T) {
	r := turn.ProcessTurn(`The slope is 2.
<question>{"text":"What is the slope of y = 2x?","options":["A) 2","B) 0"],"correctAnswer":"A"}</question>`, "slope")
	out := Reply(r, 0)
	for _, want := range []string{"The slope is 2.", "What is the slope of y = 2x?", "A) 2", "#slope"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestScale(t *testing.T) {
	r := chart.Range{Min: -10, Max: 10}
	if got := scale(-10, r, 21); got != 0 {
		t.Errorf("scale(min) = %d", got)
	}
	if got := scale(10, r, 21); got != 20 {
		t.Errorf("scale(max) = %d", got)
	}
	if got := scale(0, r, 21); got != 10 {
		t.Errorf("scale(0) = %d", got)
	}
}
