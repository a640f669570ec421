package fetch

import (
	"github.com/sparta-contents/summary-note-maker/internal/drive"
	"github.com/sparta-contents/summary-note-maker/internal/logger"
	"github.com/sparta-contents/summary-note-maker/internal/output"
)

type implFetcher struct {
	drive        drive.Drive
	generator    Generator
	writer       output.Writer
	logger       logger.Logger
	outputFolder string
}

// New creates a Fetcher. Uploaded notes go into a child folder named
// outputFolder.
func New(d drive.Drive, gen Generator, w output.Writer, outputFolder string, log logger.Logger) Fetcher {
	return &implFetcher{
		drive:        d,
		generator:    gen,
		writer:       w,
		logger:       log,
		outputFolder: outputFolder,
	}
}
