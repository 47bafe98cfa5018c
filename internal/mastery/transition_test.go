package mastery

import (
	"testing"
)

func TestApply_DoesNotMutateInput(t *testing.T) {
	s := ConversationState{QuestionTypesUsed: []QuestionFormat{FormatMultipleChoice}}
	n := Apply(s, Outcome{Format: FormatShortAnswer, Answered: true, Correct: true})
	if len(s.QuestionTypesUsed) != 1 || s.ExchangeCount != 0 || s.ConsecutiveCorrect != 0 {
		t.Fatalf("input mutated: %+v", s)
	}
	if len(n.QuestionTypesUsed) != 2 || n.ExchangeCount != 1 {
		t.Fatalf("unexpected next state: %+v", n)
	}
}

func TestApply_CorrectStreakReachesMastery(t *testing.T) {
	s := ConversationState{}
	for i := 0; i < 3; i++ {
		s = Apply(s, Outcome{Concept: "slope", Answered: true, Correct: true})
	}
	if s.ConsecutiveCorrect != 3 || s.QuestionsOnConcept != 3 {
		t.Fatalf("counters = %d/%d, want 3/3", s.ConsecutiveCorrect, s.QuestionsOnConcept)
	}
	if !MasteryReady(s) {
		t.Fatal("expected mastery ready")
	}
}

func TestApply_IncorrectRaisesScaffoldingToCap(t *testing.T) {
	s := ConversationState{ConsecutiveCorrect: 2}
	for i := 0; i < 5; i++ {
		s = Apply(s, Outcome{Answered: true, Correct: false, Answer: "C"})
	}
	if s.ScaffoldingLevel != MaxScaffolding {
		t.Fatalf("scaffolding = %d, want %d", s.ScaffoldingLevel, MaxScaffolding)
	}
	if s.ConsecutiveCorrect != 0 || s.ErrorCount != 5 {
		t.Fatalf("streaks = %d/%d", s.ConsecutiveCorrect, s.ErrorCount)
	}
	if s.LastIncorrectAnswer != "C" || s.LastErrorType != DefaultErrorType {
		t.Fatalf("last error = %q/%q", s.LastIncorrectAnswer, s.LastErrorType)
	}
}

func TestApply_CorrectPairLowersScaffolding(t *testing.T) {
	s := ConversationState{ScaffoldingLevel: 2, ErrorCount: 1, LastIncorrectAnswer: "x"}
	s = Apply(s, Outcome{Answered: true, Correct: true})
	if s.ScaffoldingLevel != 2 {
		t.Fatalf("scaffolding dropped after one correct: %d", s.ScaffoldingLevel)
	}
	if s.ErrorCount != 0 || s.LastIncorrectAnswer != "" {
		t.Fatalf("error state not cleared: %+v", s)
	}
	s = Apply(s, Outcome{Answered: true, Correct: true})
	if s.ScaffoldingLevel != 1 {
		t.Fatalf("scaffolding = %d, want 1", s.ScaffoldingLevel)
	}
}

func TestApply_ConceptChangeResetsCounters(t *testing.T) {
	s := ConversationState{CurrentConcept: "slope", QuestionsOnConcept: 4, ConsecutiveCorrect: 4, ScaffoldingLevel: 1}
	n := Apply(s, Outcome{Concept: "Slope"})
	if n.QuestionsOnConcept != 4 {
		t.Fatal("same concept in different case should not reset")
	}
	n = Apply(s, Outcome{Concept: "y-intercept"})
	if n.CurrentConcept != "y-intercept" || n.QuestionsOnConcept != 0 || n.ConsecutiveCorrect != 0 {
		t.Fatalf("concept change did not reset: %+v", n)
	}
	if n.ScaffoldingLevel != 1 {
		t.Fatalf("scaffolding should carry over, got %d", n.ScaffoldingLevel)
	}
}

func TestApply_FormatRotation(t *testing.T) {
	s := ConversationState{}
	for _, f := range Formats[:len(Formats)-1] {
		s = Apply(s, Outcome{Format: f})
	}
	if got := UnusedFormats(s); len(got) != 1 || got[0] != Formats[len(Formats)-1] {
		t.Fatalf("UnusedFormats = %v", got)
	}
	s = Apply(s, Outcome{Format: Formats[len(Formats)-1]})
	if len(s.QuestionTypesUsed) != 1 || s.QuestionTypesUsed[0] != Formats[len(Formats)-1] {
		t.Fatalf("rotation did not restart: %v", s.QuestionTypesUsed)
	}
	s = Apply(s, Outcome{Format: "interpretive-dance"})
	if len(s.QuestionTypesUsed) != 1 {
		t.Fatalf("unknown format recorded: %v", s.QuestionTypesUsed)
	}
}

func TestApply_Checkpoint(t *testing.T) {
	s := ConversationState{}
	for i := 0; i < 4; i++ {
		s = Apply(s, Outcome{})
	}
	if !CheckpointDue(s) {
		t.Fatal("expected checkpoint due after 4 exchanges")
	}
	s = Apply(s, Outcome{Checkpoint: true})
	if CheckpointDue(s) || s.LastCheckpointExchange != 5 {
		t.Fatalf("checkpoint not recorded: %+v", s)
	}
}

func TestNormalize(t *testing.T) {
	s := ConversationState{
		ScaffoldingLevel:       9,
		ErrorCount:             -2,
		ExchangeCount:          3,
		LastCheckpointExchange: 10,
		QuestionTypesUsed:      []QuestionFormat{FormatExplain, "bogus", FormatMultipleChoice, FormatExplain},
	}.Normalize()
	if s.ScaffoldingLevel != MaxScaffolding || s.ErrorCount != 0 || s.LastCheckpointExchange != 3 {
		t.Fatalf("counters not clamped: %+v", s)
	}
	if len(s.QuestionTypesUsed) != 2 || s.QuestionTypesUsed[0] != FormatMultipleChoice {
		t.Fatalf("formats = %v", s.QuestionTypesUsed)
	}
}

func TestDiff(t *testing.T) {
	prev := ConversationState{CurrentConcept: "slope", ScaffoldingLevel: 1}
	next := Apply(prev, Outcome{Concept: "vertex", Answered: true, Correct: false})
	got := Diff(prev, next)
	var fields []string
	for _, tr := range got {
		fields = append(fields, tr.Field)
	}
	if len(got) < 2 || fields[0] != "concept" || fields[1] != "scaffolding" {
		t.Fatalf("Diff = %v", got)
	}
	if got[1].Trigger != "incorrect-answer" {
		t.Errorf("scaffolding trigger = %q", got[1].Trigger)
	}
}
