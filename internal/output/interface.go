package output

import (
	"context"

	"github.com/sparta-contents/summary-note-maker/internal/notes"
)

// Writer stores a finished notes document on local disk.
type Writer interface {
	Write(ctx context.Context, sourceName string, doc notes.Document) (Paths, error)
}

// Paths lists the files produced for one document.
type Paths struct {
	JSON string
	Docx string
}
