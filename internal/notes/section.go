package notes

import (
	"encoding/json"
	"path/filepath"
	"strings"
)

const (
	// TypeSection is the type tag carried by every section entry.
	TypeSection = "section"
	// TriggerTimeline is the fixed attrs.trigger value.
	TriggerTimeline = "timeline"
	// PlaceholderID is what the model is asked to put in attrs.id. It is never read.
	PlaceholderID = "GENERATE_UUID"

	LayoutBulletList = "bulletList"
	LayoutParagraph  = "paragraph"

	// InvalidOutputMessage is the error text for a response that is not a JSON array.
	InvalidOutputMessage = "model produced invalid structured output"
)

// Document is an ordered list of entries as decoded from JSON. Entries are
// normally section objects (*Object) but anything the model emitted is kept
// as-is.
type Document []any

// Section is a typed view of a section entry, used for rendering.
type Section struct {
	Title     string
	Level     int
	Content   []string
	StartTime float64
	Layout    string
	ID        string
	Index     int
}

// ErrorRecord is the single entry of a document that could not be produced.
type ErrorRecord struct {
	Error       string
	RawResponse string
}

// NewErrorDocument returns a one-entry document holding an error record.
func NewErrorDocument(message, raw string) Document {
	return Document{NewObject().Set("error", message).Set("raw_response", raw)}
}

// Failure reports whether the document is an error record.
func (d Document) Failure() (ErrorRecord, bool) {
	if len(d) == 0 {
		return ErrorRecord{}, false
	}
	entry, ok := d[0].(*Object)
	if !ok {
		return ErrorRecord{}, false
	}
	msg, ok := entry.Get("error")
	if !ok {
		return ErrorRecord{}, false
	}
	rec := ErrorRecord{Error: stringValue(msg)}
	rec.RawResponse = stringValue(entry.Value("raw_response"))
	return rec, true
}

// Sections returns typed views of the section entries in document order.
// Fields with unexpected types are left at their zero value.
func (d Document) Sections() []Section {
	var out []Section
	for _, entry := range d {
		m, ok := asSection(entry)
		if !ok {
			continue
		}
		s := Section{
			Title:     stringValue(m.Value("title")),
			Level:     int(numberValue(m.Value("level"))),
			StartTime: numberValue(m.Value("startTime")),
			Layout:    stringValue(m.Value("layout")),
			Index:     len(out),
		}
		if items, ok := m.Value("content").([]any); ok {
			for _, item := range items {
				if text, ok := item.(string); ok {
					s.Content = append(s.Content, text)
				}
			}
		}
		if attrs, ok := m.Value("attrs").(*Object); ok {
			s.ID = stringValue(attrs.Value("id"))
			if s.Layout == "" {
				s.Layout = stringValue(attrs.Value("layout"))
			}
		}
		out = append(out, s)
	}
	return out
}

// OutputName replaces the extension of a source file name with .json.
func OutputName(sourceName string) string {
	return strings.TrimSuffix(sourceName, filepath.Ext(sourceName)) + ".json"
}

func asSection(entry any) (*Object, bool) {
	m, ok := entry.(*Object)
	if !ok || m == nil {
		return nil, false
	}
	if t, ok := m.Value("type").(string); !ok || t != TypeSection {
		return nil, false
	}
	return m, true
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

func numberValue(v any) float64 {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}
