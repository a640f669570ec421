package batch

import (
	"context"

	"github.com/sparta-contents/summary-note-maker/internal/ledger"
	"github.com/sparta-contents/summary-note-maker/internal/notes"
)

// Runner summarizes every subtitle file of a Drive folder, one file at a time
type Runner interface {
	Run(ctx context.Context, folderID string, opts Options) (Report, error)
}

// Generator produces a notes document from subtitle content
type Generator interface {
	Generate(ctx context.Context, content, fileName string) (notes.Document, error)
}

// Ledger remembers which files were already summarized
type Ledger interface {
	LookupDone(ctx context.Context, sourceID, contentHash string) (ledger.Entry, bool, error)
	Record(ctx context.Context, e ledger.Entry) error
}

// Options tune a single batch run
type Options struct {
	// Force re-summarizes files the ledger already marks as done.
	Force bool
	// OnResult is called after each file, in order.
	OnResult func(FileResult)
}
