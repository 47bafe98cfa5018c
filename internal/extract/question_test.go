package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func TestDecodeQuestion_WireFormat(t *testing.T) {
	payload := json.RawMessage(`{"text":"What is 2+2?","options":[{"label":"A","text":"3"},{"label":"B","text":"4"}],"correctAnswer":"B","explanation":"2+2=4"}`)
	q, err := DecodeQuestion(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.CorrectAnswer != "B" {
		t.Errorf("correct answer = %q", q.CorrectAnswer)
	}
	if q.ID == "" {
		t.Error("expected generated id")
	}
	if len(q.Options) != 2 || q.Option("B").Text != "4" {
		t.Errorf("options = %+v", q.Options)
	}
	if q.Explanation != "2+2=4" {
		t.Errorf("explanation = %q", q.Explanation)
	}
}

func TestDecodeQuestion_IDsAreUnique(t *testing.T) {
	payload := json.RawMessage(`{"text":"t","options":[{"label":"A","text":"x"},{"label":"B","text":"y"}],"correctAnswer":"A"}`)
	a, _ := DecodeQuestion(payload)
	b, _ := DecodeQuestion(payload)
	if a.ID == b.ID {
		t.Fatal("expected distinct ids per extraction")
	}
}

func TestDecodeQuestion_Aliases(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		answer  string
	}{
		{"snake case answer", `{"text":"q","options":[{"label":"A","text":"1"},{"label":"B","text":"2"}],"correct_answer":"a"}`, "A"},
		{"answer key", `{"question":"q","options":[{"label":"A","text":"1"},{"label":"B","text":"2"}],"answer":"(B)"}`, "B"},
		{"string options", `{"text":"q","options":["A) 1","B) 2","C) 3"],"correctAnswer":"C"}`, "C"},
		{"unlabelled strings", `{"text":"q","options":["red","blue"],"correctAnswer":"B"}`, "B"},
		{"map options", `{"text":"q","options":{"B":"2","A":"1"},"correctAnswer":"A"}`, "A"},
		{"numeric labels", `{"text":"q","options":[{"label":1,"text":"x"},{"label":2,"text":"y"}],"correctAnswer":2}`, "2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := DecodeQuestion(json.RawMessage(tt.payload))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if q.CorrectAnswer != tt.answer {
				t.Errorf("correct answer = %q, want %q", q.CorrectAnswer, tt.answer)
			}
		})
	}
}

func TestDecodeQuestion_MapOptionsSortedByLabel(t *testing.T) {
	q, err := DecodeQuestion(json.RawMessage(`{"text":"q","options":{"C":"3","A":"1","B":"2"},"correctAnswer":"A"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Options[0].Label != "A" || q.Options[2].Label != "C" {
		t.Errorf("options not ordered: %+v", q.Options)
	}
}

func TestDecodeQuestion_AnswerMustMatchExactlyOneLabel(t *testing.T) {
	labels := []string{"A", "B", "C", "D"}
	for n := 2; n <= len(labels); n++ {
		for _, answer := range []string{"E", "Z", "", "AB", "5", "none", "A B"} {
			opts := make([]map[string]string, n)
			for i := 0; i < n; i++ {
				opts[i] = map[string]string{"label": labels[i], "text": fmt.Sprintf("choice %d", i)}
			}
			payload, _ := json.Marshal(map[string]any{"text": "q", "options": opts, "correctAnswer": answer})

			q, err := DecodeQuestion(payload)
			if q != nil || err == nil {
				t.Errorf("n=%d answer=%q: expected drop, got %+v", n, answer, q)
			}
		}
	}
}

func TestDecodeQuestion_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		validator string
	}{
		{"duplicate labels", `{"text":"q","options":[{"label":"A","text":"1"},{"label":"a","text":"2"}],"correctAnswer":"A"}`, "unique-labels"},
		{"single option", `{"text":"q","options":[{"label":"A","text":"1"}],"correctAnswer":"A"}`, "structural"},
		{"empty option text", `{"text":"q","options":[{"label":"A","text":""},{"label":"B","text":"2"}],"correctAnswer":"B"}`, "structural"},
		{"blank question text", `{"text":"   ","options":[{"label":"A","text":"1"},{"label":"B","text":"2"}],"correctAnswer":"B"}`, "structural"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeQuestion(json.RawMessage(tt.payload))
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Validator != tt.validator {
				t.Errorf("validator = %q, want %q", verr.Validator, tt.validator)
			}
		})
	}
}

func TestDecodeQuestion_SchemaRejectsWrongShapes(t *testing.T) {
	for _, payload := range []string{
		`[]`,
		`{"options":[]}`,
		`{"text":"q"}`,
		`{"text":5,"options":[]}`,
		`{"text":"q","options":"A or B"}`,
	} {
		if _, err := DecodeQuestion(json.RawMessage(payload)); err == nil {
			t.Errorf("DecodeQuestion(%s) expected error", payload)
		}
	}
}

func TestSplitLabelled(t *testing.T) {
	tests := []struct{ in, label, text string }{
		{"A) 12", "A", "12"},
		{"(c) twelve", "c", "twelve"},
		{"B. 4", "B", "4"},
		{"1.5 cm", "", "1.5 cm"},
		{"x", "", "x"},
	}
	for _, tt := range tests {
		label, text := splitLabelled(tt.in)
		if label != tt.label || text != tt.text {
			t.Errorf("splitLabelled(%q) = (%q, %q), want (%q, %q)", tt.in, label, text, tt.label, tt.text)
		}
	}
}
