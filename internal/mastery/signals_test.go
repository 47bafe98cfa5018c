package mastery

import (
	"strings"
	"testing"
)

func TestMasteryReady(t *testing.T) {
	tests := []struct {
		name      string
		streak    int
		questions int
		want      bool
	}{
		{"zero state", 0, 0, false},
		{"streak without volume", 3, 2, false},
		{"volume without streak", 2, 5, false},
		{"both thresholds", 3, 3, true},
		{"above thresholds", 5, 7, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ConversationState{ConsecutiveCorrect: tt.streak, QuestionsOnConcept: tt.questions}
			if got := MasteryReady(s); got != tt.want {
				t.Errorf("MasteryReady = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckpointDue(t *testing.T) {
	if CheckpointDue(ConversationState{}) {
		t.Error("checkpoint due at session start")
	}
	if CheckpointDue(ConversationState{ExchangeCount: 7, LastCheckpointExchange: 4}) {
		t.Error("checkpoint due after 3 exchanges")
	}
	if !CheckpointDue(ConversationState{ExchangeCount: 8, LastCheckpointExchange: 4}) {
		t.Error("checkpoint not due after 4 exchanges")
	}
}

func TestUnusedFormats(t *testing.T) {
	if got := UnusedFormats(ConversationState{}); len(got) != len(Formats) {
		t.Fatalf("fresh state: %v", got)
	}
	s := ConversationState{QuestionTypesUsed: []QuestionFormat{FormatTrueFalse, FormatMultipleChoice}}
	got := UnusedFormats(s)
	want := []QuestionFormat{FormatShortAnswer, FormatFillInBlank, FormatExplain, FormatGraphReading}
	if len(got) != len(want) {
		t.Fatalf("UnusedFormats = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("UnusedFormats = %v, want %v", got, want)
		}
	}
}

func TestResolvePhase(t *testing.T) {
	cases := []struct {
		state ConversationState
		want  Phase
	}{
		{ConversationState{}, PhaseStarting},
		{ConversationState{QuestionsOnConcept: 1, ConsecutiveCorrect: 1}, PhasePracticing},
		{ConversationState{QuestionsOnConcept: 2, ErrorCount: 2, ScaffoldingLevel: 2}, PhaseStruggling},
		{ConversationState{QuestionsOnConcept: 3, ConsecutiveCorrect: 3}, PhaseReady},
	}
	for _, c := range cases {
		if got := ResolvePhase(c.state); got != c.want {
			t.Errorf("ResolvePhase(%+v) = %s, want %s", c.state, got, c.want)
		}
	}
}

func TestSummary(t *testing.T) {
	s := ConversationState{
		CurrentConcept:      "slope",
		QuestionsOnConcept:  2,
		ErrorCount:          1,
		ScaffoldingLevel:    1,
		ExchangeCount:       5,
		QuestionTypesUsed:   []QuestionFormat{FormatMultipleChoice},
		LastIncorrectAnswer: "A",
		LastErrorType:       "sign-error",
		AwaitingReasoning:   true,
	}
	out := Summary(s)
	for _, want := range []string{
		"Current concept: slope (2 questions answered)",
		"Scaffolding level: 1 of 3",
		"Checkpoint due: yes (5 exchanges",
		"Unused question formats: short-answer,",
		`Last incorrect answer: "A" (sign-error)`,
		"explain their reasoning",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "multiple-choice") {
		t.Errorf("used format listed as unused:\n%s", out)
	}
}
