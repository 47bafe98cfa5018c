package extract

import (
	"encoding/json"
	"reflect"
	"testing"
)

func decode(t *testing.T, raw json.RawMessage) any {
	t.Helper()
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("unmarshal %s: %v", raw, err)
	}
	return v
}

func TestParseLenient_LineCommentsMatchCleanPayload(t *testing.T) {
	clean := `{"kind":"quadratic","a":1,"b":-2,"c":1}`
	commented := "{\n  \"kind\": \"quadratic\", // parabola\n  \"a\": 1, // leading\n  \"b\": -2,\n  \"c\": 1 // constant\n}"

	want, err := ParseLenient(clean)
	if err != nil {
		t.Fatalf("clean: %v", err)
	}
	got, err := ParseLenient(commented)
	if err != nil {
		t.Fatalf("commented: %v", err)
	}
	if !reflect.DeepEqual(decode(t, got), decode(t, want)) {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestParseLenient_CommentMarkersInsideStrings(t *testing.T) {
	raw := `{"url":"https://example.com/a", "note":"use /* carefully */"}`
	got, err := ParseLenient(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v := decode(t, got).(map[string]any)
	if v["url"] != "https://example.com/a" || v["note"] != "use /* carefully */" {
		t.Errorf("string contents altered: %v", v)
	}
}

func TestParseLenient_BlockCommentsAndTrailingCommas(t *testing.T) {
	raw := `{/* header */ "data": [1, 2, 3,], "label": "x",}`
	got, err := ParseLenient(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `{"data":[1,2,3],"label":"x"}` {
		t.Errorf("got %s", got)
	}
}

func TestParseLenient_CodeFence(t *testing.T) {
	raw := "```json\n{\"kind\": \"pie\"}\n```"
	got, err := ParseLenient(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `{"kind":"pie"}` {
		t.Errorf("got %s", got)
	}
}

func TestParseLenient_SurroundingProse(t *testing.T) {
	got, err := ParseLenient(`Here you go: {"kind":"bar"} hope it helps`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `{"kind":"bar"}` {
		t.Errorf("got %s", got)
	}
}

func TestParseLenient_Errors(t *testing.T) {
	for _, raw := range []string{"", "   ", "{", `{"a":}`, "just words", "// only a comment"} {
		if _, err := ParseLenient(raw); err == nil {
			t.Errorf("ParseLenient(%q) expected error", raw)
		}
	}
}
