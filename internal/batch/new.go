package batch

import (
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/sparta-contents/summary-note-maker/internal/drive"
	"github.com/sparta-contents/summary-note-maker/internal/logger"
)

type implRunner struct {
	drive        drive.Drive
	generator    Generator
	ledger       Ledger
	logger       logger.Logger
	outputFolder string
	lock         *flock.Flock
}

// New creates a Runner. ledger may be nil, in which case nothing is skipped
// or recorded. The lock file lives in stateDir.
func New(d drive.Drive, gen Generator, l Ledger, outputFolder, stateDir string, log logger.Logger) Runner {
	return &implRunner{
		drive:        d,
		generator:    gen,
		ledger:       l,
		logger:       log,
		outputFolder: outputFolder,
		lock:         flock.New(filepath.Join(stateDir, "batch.lock")),
	}
}
