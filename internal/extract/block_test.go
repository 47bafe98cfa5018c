package extract

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestExtractBlock_RemovesBlockAndParses(t *testing.T) {
	text := "Let's practice.\n<question>{\"text\":\"2+2?\"}</question>\nGood luck!"
	b := ExtractBlock(text, TagQuestion)
	if !b.Found {
		t.Fatal("expected block to be found")
	}
	if strings.Contains(b.Remainder, "<question>") || strings.Contains(b.Remainder, "2+2?") {
		t.Errorf("block leaked into remainder: %q", b.Remainder)
	}
	if b.Remainder != "Let's practice.\n\nGood luck!" {
		t.Errorf("remainder = %q", b.Remainder)
	}
	if string(b.Payload) != `{"text":"2+2?"}` {
		t.Errorf("payload = %s", b.Payload)
	}
}

func TestExtractBlock_CaseInsensitiveTags(t *testing.T) {
	b := ExtractBlock(`See <CHART>{"kind":"linear"}</Chart> above`, TagChart)
	if !b.Found || b.Payload == nil {
		t.Fatalf("expected parsed block, got %+v", b)
	}
	if b.Remainder != "See  above" {
		t.Errorf("remainder = %q", b.Remainder)
	}
}

func TestExtractBlock_MalformedPayloadStillRemoved(t *testing.T) {
	b := ExtractBlock("Before<question>{not json at all</question>After", TagQuestion)
	if !b.Found {
		t.Fatal("expected block to be found")
	}
	if b.Payload != nil {
		t.Errorf("expected nil payload, got %s", b.Payload)
	}
	if b.Err == nil {
		t.Error("expected parse error to be reported")
	}
	if b.Remainder != "Before After" {
		t.Errorf("remainder = %q", b.Remainder)
	}
}

func TestExtractBlock_NoBlockLeavesTextUnchanged(t *testing.T) {
	inputs := []string{
		"",
		"plain prose",
		"<question>{\"text\":\"unterminated\"}",
		"</question> closing only",
		"<question",
		"<<question>>",
		"<chart>{}</chart>",
	}
	for _, in := range inputs {
		b := ExtractBlock(in, TagQuestion)
		if b.Found || b.Payload != nil || b.Remainder != in {
			t.Errorf("ExtractBlock(%q) = %+v, want unchanged", in, b)
		}
	}
}

func TestExtractBlock_NestedLookingDelimiters(t *testing.T) {
	in := "x <question><question>{\"a\":1}</question></question> y"
	b := ExtractBlock(in, TagQuestion)
	if !b.Found {
		t.Fatal("expected a block")
	}
	// Only the first pair is consumed; the object inside it is recovered.
	if string(b.Payload) != `{"a":1}` {
		t.Errorf("payload = %s", b.Payload)
	}
	if b.Remainder != "x </question> y" {
		t.Errorf("remainder = %q", b.Remainder)
	}
	if got := Tidy(b.Remainder, TagQuestion); got != "x  y" {
		t.Errorf("Tidy = %q", got)
	}
}

func TestExtractBlock_OnlyFirstBlock(t *testing.T) {
	in := `<question>{"n":1}</question> mid <question>{"n":2}</question>`
	b := ExtractBlock(in, TagQuestion)
	var v map[string]int
	if err := json.Unmarshal(b.Payload, &v); err != nil || v["n"] != 1 {
		t.Fatalf("expected first block, got %s (%v)", b.Payload, err)
	}
	if !strings.Contains(b.Remainder, `{"n":2}`) {
		t.Errorf("second block should be left for StripBlocks: %q", b.Remainder)
	}
	if got := StripBlocks(b.Remainder, TagQuestion); got != " mid " {
		t.Errorf("StripBlocks = %q", got)
	}
}

func TestExtractBlock_NeverPanics(t *testing.T) {
	inputs := []string{
		"<question>", "</question>", "<question></question>", "<question>\x00\xff</question>",
		"<question>{</question>", "<question>}</question>", "<question>\"</question>",
		"<question>/*</question>", "<question>//</question>", strings.Repeat("<question>", 50),
	}
	for _, in := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("ExtractBlock(%q) panicked: %v", in, r)
				}
			}()
			ExtractBlock(in, TagQuestion)
		}()
	}
}

func TestTrimUnterminated(t *testing.T) {
	in := "Try this one:\n<question>{\"text\":\"What is"
	if got := TrimUnterminated(in, TagQuestion); got != "Try this one:" {
		t.Errorf("got %q", got)
	}
	complete := "a <question>{}</question> b"
	if got := TrimUnterminated(complete, TagQuestion); got != complete {
		t.Errorf("complete block altered: %q", got)
	}
	if got := TrimUnterminated("no tags", TagQuestion); got != "no tags" {
		t.Errorf("got %q", got)
	}
	fenced := "See below. <chart>\n```json\n{\"kind\":\"bar"
	if got := TrimUnterminated(fenced, TagChart); got != "See below." {
		t.Errorf("fenced payload: got %q", got)
	}
	if got := TrimUnterminated("Almost there <question>", TagQuestion); got != "Almost there" {
		t.Errorf("opener at end: got %q", got)
	}
}

func TestTrimUnterminated_KeepsProseMentions(t *testing.T) {
	for _, in := range []string{
		"Answers go inside a <question> tag, then the explanation follows.",
		"Use <chart> when a picture helps. It is optional.",
	} {
		tag := TagQuestion
		if strings.Contains(in, "<chart>") {
			tag = TagChart
		}
		if got := TrimUnterminated(in, tag); got != in {
			t.Errorf("prose truncated: %q -> %q", in, got)
		}
		if got := Tidy(in, tag); got != in {
			t.Errorf("Tidy truncated prose: %q -> %q", in, got)
		}
	}
}

func TestTidy(t *testing.T) {
	in := "Intro <chart>{}</chart> body </chart> end <chart>{\"kind\":"
	if got := Tidy(in, TagChart); got != "Intro  body  end" {
		t.Errorf("Tidy = %q", got)
	}
}
