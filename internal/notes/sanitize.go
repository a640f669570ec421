package notes

import (
	"encoding/json"
	"errors"
	"io"
	"regexp"
	"strings"
)

var codeFence = regexp.MustCompile("(?i)\\s*```json\\s*|\\s*```")

// StripCodeFences removes every ```json opener and ``` closer from the text.
func StripCodeFences(raw string) string {
	return strings.TrimSpace(codeFence.ReplaceAllString(raw, ""))
}

// Sanitize turns a raw model response into a finalized document. A response
// that is not a JSON array becomes a single error record carrying the cleaned
// text; it is never returned as a Go error.
func Sanitize(raw string) Document {
	cleaned := StripCodeFences(raw)
	doc, err := decodeArray(cleaned)
	if err != nil {
		return NewErrorDocument(InvalidOutputMessage, cleaned)
	}
	Finalize(doc)
	return doc
}

// Decode parses a serialized document, keeping numbers as json.Number and
// object members in their written order.
func Decode(data []byte) (Document, error) {
	return decodeArray(string(data))
}

func decodeArray(text string) (Document, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	value, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after JSON value")
	}
	items, ok := value.([]any)
	if !ok {
		return nil, errors.New("top-level JSON value is not an array")
	}
	return Document(items), nil
}
