package diagnosis

import (
	"testing"
	"time"

	"github.com/abhisek/tutorcore/internal/extract"
	"github.com/abhisek/tutorcore/internal/mastery"
)

func testQuestion() *extract.EmbeddedQuestion {
	return &extract.EmbeddedQuestion{
		Text:          "What is 3/4 as a decimal?",
		Options:       []extract.Option{{Label: "A", Text: "0.34"}, {Label: "B", Text: "0.75"}, {Label: "C", Text: "1.33"}},
		CorrectAnswer: "B",
	}
}

func TestSpeedRushClassifier_UnderThreshold(t *testing.T) {
	c := &SpeedRushClassifier{}
	cat, conf := c.Classify(&ClassifyInput{ResponseTime: 1500 * time.Millisecond})
	if cat != CategorySpeedRush {
		t.Errorf("got category %q, want %q", cat, CategorySpeedRush)
	}
	if conf != 0.9 {
		t.Errorf("got confidence %f, want 0.9", conf)
	}
}

func TestSpeedRushClassifier_AtThreshold(t *testing.T) {
	c := &SpeedRushClassifier{}
	cat, _ := c.Classify(&ClassifyInput{ResponseTime: SpeedRushThreshold})
	if cat != "" {
		t.Errorf("got category %q at threshold, want empty", cat)
	}
}

func TestSpeedRushClassifier_UnknownTime(t *testing.T) {
	c := &SpeedRushClassifier{}
	cat, _ := c.Classify(&ClassifyInput{})
	if cat != "" {
		t.Errorf("got category %q for unknown response time, want empty", cat)
	}
}

func TestCarelessClassifier_AfterStreak(t *testing.T) {
	c := &CarelessClassifier{}
	cat, conf := c.Classify(&ClassifyInput{State: mastery.ConversationState{ConsecutiveCorrect: 3}})
	if cat != CategoryCareless {
		t.Errorf("got category %q, want %q", cat, CategoryCareless)
	}
	if conf != 0.8 {
		t.Errorf("got confidence %f, want 0.8", conf)
	}
}

func TestCarelessClassifier_ShortStreak(t *testing.T) {
	c := &CarelessClassifier{}
	cat, _ := c.Classify(&ClassifyInput{State: mastery.ConversationState{ConsecutiveCorrect: 2}})
	if cat != "" {
		t.Errorf("got category %q, want empty", cat)
	}
}

func TestRepeatedClassifier(t *testing.T) {
	tests := []struct {
		name     string
		input    ClassifyInput
		wantCat  ErrorCategory
		wantConf float64
	}{
		{
			name:     "same text",
			input:    ClassifyInput{Answer: " 0.34 ", State: mastery.ConversationState{LastIncorrectAnswer: "0.34"}},
			wantCat:  CategoryRepeated,
			wantConf: 0.9,
		},
		{
			name: "same option by label",
			input: ClassifyInput{
				Question: testQuestion(),
				Answer:   "A",
				Label:    "A",
				State:    mastery.ConversationState{LastIncorrectAnswer: "0.34"},
			},
			wantCat:  CategoryRepeated,
			wantConf: 0.7,
		},
		{
			name: "different option",
			input: ClassifyInput{
				Question: testQuestion(),
				Answer:   "C",
				Label:    "C",
				State:    mastery.ConversationState{LastIncorrectAnswer: "0.34"},
			},
		},
		{
			name:  "no earlier miss",
			input: ClassifyInput{Answer: "0.34"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, conf := (&RepeatedClassifier{}).Classify(&tt.input)
			if cat != tt.wantCat || conf != tt.wantConf {
				t.Errorf("got (%q, %v), want (%q, %v)", cat, conf, tt.wantCat, tt.wantConf)
			}
		})
	}
}

func TestRunClassifiers_RepeatedPriority(t *testing.T) {
	input := &ClassifyInput{
		Answer:       "0.34",
		ResponseTime: time.Second,
		State:        mastery.ConversationState{LastIncorrectAnswer: "0.34", ConsecutiveCorrect: 4},
	}
	cat, _, name := RunClassifiers(DefaultClassifiers(), input)
	if cat != CategoryRepeated || name != "repeated" {
		t.Errorf("got (%q, %q), want repeated", cat, name)
	}
}

func TestRunClassifiers_SpeedRushBeforeCareless(t *testing.T) {
	input := &ClassifyInput{
		ResponseTime: time.Second,
		State:        mastery.ConversationState{ConsecutiveCorrect: 4},
	}
	cat, _, name := RunClassifiers(DefaultClassifiers(), input)
	if cat != CategorySpeedRush {
		t.Errorf("got category %q, want %q (speed-rush should take priority)", cat, CategorySpeedRush)
	}
	if name != "speed-rush" {
		t.Errorf("got classifier %q, want %q", name, "speed-rush")
	}
}

func TestRunClassifiers_NoMatch(t *testing.T) {
	input := &ClassifyInput{ResponseTime: 5 * time.Second}
	cat, conf, name := RunClassifiers(DefaultClassifiers(), input)
	if cat != "" {
		t.Errorf("got category %q, want empty", cat)
	}
	if conf != 0 {
		t.Errorf("got confidence %f, want 0", conf)
	}
	if name != "" {
		t.Errorf("got classifier %q, want empty", name)
	}
}

func TestClassify_FallsBackToUnclassified(t *testing.T) {
	res := Classify(DefaultClassifiers(), &ClassifyInput{ResponseTime: 5 * time.Second})
	if res.Category != CategoryUnclassified {
		t.Errorf("got %q, want %q", res.Category, CategoryUnclassified)
	}
	if string(res.Category) != mastery.DefaultErrorType {
		t.Errorf("unclassified category should match the state default")
	}
}

func TestDefaultClassifiers_Order(t *testing.T) {
	classifiers := DefaultClassifiers()
	want := []string{"repeated", "speed-rush", "careless"}
	if len(classifiers) != len(want) {
		t.Fatalf("got %d classifiers, want %d", len(classifiers), len(want))
	}
	for i, c := range classifiers {
		if c.Name() != want[i] {
			t.Errorf("classifier %d is %q, want %q", i, c.Name(), want[i])
		}
	}
}
