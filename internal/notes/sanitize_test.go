package notes

import (
	"strings"
	"testing"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", `[{"a":1}]`, `[{"a":1}]`},
		{"json fence", "```json\n[1]\n```", "[1]"},
		{"upper case fence", "```JSON  \n[1]\n  ```  ", "[1]"},
		{"bare fence", "```\n[1]\n```", "[1]"},
		{"surrounding text", "Here you go:\n```json\n[1]\n```\nThanks", "Here you go:[1]\nThanks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripCodeFences(tt.raw); got != tt.want {
				t.Errorf("StripCodeFences() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSanitizeInvalidJSONInsideFence(t *testing.T) {
	raw := "```json\n[{\"type\": \"section\", \"title\": \n```"

	doc := Sanitize(raw)
	if len(doc) != 1 {
		t.Fatalf("Sanitize() returned %d entries, want 1", len(doc))
	}
	rec, ok := doc.Failure()
	if !ok {
		t.Fatalf("Sanitize() = %v, want error record", doc)
	}
	if rec.Error != InvalidOutputMessage {
		t.Errorf("error = %q, want %q", rec.Error, InvalidOutputMessage)
	}
	if rec.RawResponse != `[{"type": "section", "title":` {
		t.Errorf("raw_response = %q", rec.RawResponse)
	}
}

func TestSanitizeRejectsNonArrays(t *testing.T) {
	for _, raw := range []string{"", `{"type":"section"}`, `"text"`, `[1] [2]`, "not json"} {
		t.Run(raw, func(t *testing.T) {
			doc := Sanitize(raw)
			if _, ok := doc.Failure(); !ok || len(doc) != 1 {
				t.Errorf("Sanitize(%q) = %v, want single error record", raw, doc)
			}
		})
	}
}

func TestSanitizeFinalizesSections(t *testing.T) {
	raw := "```json\n" + `[
  {"type": "section", "title": "1. 소개\\\\", "level": 1, "startTime": 1.5,
   "content": ["첫 문장\\\\ 입니다", 3], "attrs": {"id": "GENERATE_UUID", "trigger": "timeline"}},
  {"type": "note", "title": "keep\\\\"},
  {"type": "section", "title": "2. 본론", "level": 2, "startTime": 62}
]` + "\n```"

	doc := Sanitize(raw)
	if _, failed := doc.Failure(); failed {
		t.Fatalf("Sanitize() returned error record: %v", doc)
	}
	if len(doc) != 3 {
		t.Fatalf("Sanitize() returned %d entries, want 3", len(doc))
	}

	first := doc[0].(*Object)
	if first.Value("title") != "1. 소개" {
		t.Errorf("title = %q, want backslash removed", first.Value("title"))
	}
	content := first.Value("content").([]any)
	if content[0] != "첫 문장 입니다" {
		t.Errorf("content[0] = %q", content[0])
	}
	attrs := first.Value("attrs").(*Object)
	if id := attrs.Value("id"); id == PlaceholderID || id == "" {
		t.Errorf("attrs.id = %v, want generated id", id)
	}
	if attrs.Value("chunkindex") != 0 {
		t.Errorf("attrs.chunkindex = %v, want 0", attrs.Value("chunkindex"))
	}

	note := doc[1].(*Object)
	if note.Value("title") != `keep\\` {
		t.Errorf("non-section title changed to %q", note.Value("title"))
	}
	if _, ok := note.Get("chunkindex"); ok {
		t.Error("non-section entry got a chunkindex")
	}

	third := doc[2].(*Object)
	if got := third.Value("attrs").(*Object).Value("chunkindex"); got != 1 {
		t.Errorf("third attrs.chunkindex = %v, want 1", got)
	}
}

func TestDecode(t *testing.T) {
	doc, err := Decode([]byte(`[{"type":"section","startTime":12.50}]`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	sections := doc.Sections()
	if len(sections) != 1 || sections[0].StartTime != 12.5 {
		t.Errorf("Sections() = %+v", sections)
	}

	if _, err := Decode([]byte(`{}`)); err == nil {
		t.Error("Decode() should reject objects")
	}
}

func TestSanitizeKeepsModelKeyOrder(t *testing.T) {
	raw := "```json\n" + `[{"type": "section", "content": ["a"], "title": "t", "level": 1, "startTime": 3, "attrs": {"id": "GENERATE_UUID", "trigger": "timeline", "layout": "bulletList"}}]` + "\n```"

	data, err := Encode(Sanitize(raw))
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	out := string(data)

	order := []string{`"type"`, `"content"`, `"title"`, `"level"`, `"startTime"`, `"attrs"`, `"id"`, `"trigger"`, `"layout"`, `"chunkindex": 0`, `"chunkindex": [`}
	last := -1
	for _, key := range order {
		idx := strings.Index(out, key)
		if idx <= last {
			t.Fatalf("%s out of order in:\n%s", key, out)
		}
		last = idx
	}
}
