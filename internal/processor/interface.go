package processor

import (
	"context"

	"github.com/sparta-contents/summary-note-maker/internal/notes"
	"github.com/sparta-contents/summary-note-maker/internal/output"
)

// Processor turns subtitle text into a finished summary-note document
type Processor interface {
	// Generate runs normalize -> prompt -> model -> sanitize for one file.
	// Invalid model output is returned as an error-record document, not an error.
	Generate(ctx context.Context, content, fileName string) (notes.Document, error)
	// ProcessFile reads a local .srt file and writes its notes to the output directory.
	ProcessFile(ctx context.Context, srtPath string) (Result, error)
}

// Result describes one locally processed file
type Result struct {
	Document notes.Document
	Paths    output.Paths
}
