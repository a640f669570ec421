package fetch

import (
	"context"

	"github.com/sparta-contents/summary-note-maker/internal/drive"
	"github.com/sparta-contents/summary-note-maker/internal/notes"
	"github.com/sparta-contents/summary-note-maker/internal/output"
)

// Fetcher summarizes one subtitle file stored on Google Drive
type Fetcher interface {
	Fetch(ctx context.Context, fileID string, opts Options) (Result, error)
}

// Generator produces a notes document from subtitle content
type Generator interface {
	Generate(ctx context.Context, content, fileName string) (notes.Document, error)
}

// Options choose where the notes go
type Options struct {
	// Local writes the notes into the output directory.
	Local bool
	// Upload stores the notes in the output folder on Drive.
	Upload bool
	// ParentID is the folder that holds the output folder. Empty means the
	// subtitle file's own folder.
	ParentID string
}

// Result describes one fetched file
type Result struct {
	File        drive.File
	ContentHash string
	Document    notes.Document
	Paths       output.Paths
	Link        string
}
