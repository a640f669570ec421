package notes

import (
	"strings"

	"github.com/google/uuid"
)

// escapeArtifact is the stray character the model leaves in text fields.
const escapeArtifact = `\`

// Finalize runs the post-processing passes over a decoded document in place:
// fresh ids, escape cleanup, then chunk indexes. No entry is added, removed
// or reordered.
func Finalize(doc Document) {
	AssignIDs(doc, uuid.NewString)
	StripEscapeArtifacts(doc)
	AssignChunkIndexes(doc)
}

// AssignIDs overwrites attrs.id of every section with a value from newID.
// Whatever the model put there is discarded unread. A missing or non-object
// attrs is replaced with an empty object first.
func AssignIDs(doc Document, newID func() string) {
	for _, entry := range doc {
		section, ok := asSection(entry)
		if !ok {
			continue
		}
		attrs := ensureAttrs(section)
		attrs.Set("id", newID())
	}
}

// StripEscapeArtifacts removes backslashes from the title and content lines of
// every section. Non-string values are left alone.
func StripEscapeArtifacts(doc Document) {
	for _, entry := range doc {
		section, ok := asSection(entry)
		if !ok {
			continue
		}
		if title, ok := section.Value("title").(string); ok {
			section.Set("title", strings.ReplaceAll(title, escapeArtifact, ""))
		}
		if lines, ok := section.Value("content").([]any); ok {
			for i, line := range lines {
				if text, ok := line.(string); ok {
					lines[i] = strings.ReplaceAll(text, escapeArtifact, "")
				}
			}
		}
	}
}

// AssignChunkIndexes numbers sections 0..n-1 in document order, writing both
// the top-level chunkindex ([i]) and attrs.chunkindex (i). Only entries typed
// "section" are counted. Running it again on the same order gives the same
// numbers.
func AssignChunkIndexes(doc Document) {
	next := 0
	for _, entry := range doc {
		section, ok := asSection(entry)
		if !ok {
			continue
		}
		section.Set("chunkindex", []any{next})
		ensureAttrs(section).Set("chunkindex", next)
		next++
	}
}

func ensureAttrs(section *Object) *Object {
	attrs, ok := section.Value("attrs").(*Object)
	if !ok || attrs == nil {
		attrs = NewObject()
		section.Set("attrs", attrs)
	}
	return attrs
}
