package output

import (
	"github.com/sparta-contents/summary-note-maker/internal/logger"
)

type implWriter struct {
	dir    string
	docx   bool
	logger logger.Logger
}

// New creates a Writer that stores documents in dir. When docx is true a
// styled .docx rendering is written next to each JSON file.
func New(dir string, docx bool, log logger.Logger) Writer {
	return &implWriter{
		dir:    dir,
		docx:   docx,
		logger: log,
	}
}
