package notes

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Encode serializes a document as indented JSON with non-ASCII text kept
// verbatim. A nil document encodes as an empty array.
func Encode(doc Document) ([]byte, error) {
	if doc == nil {
		doc = Document{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode notes: %w", err)
	}
	return buf.Bytes(), nil
}
