package watcher

import (
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sparta-contents/summary-note-maker/internal/logger"
)

const (
	defaultSettle = 500 * time.Millisecond
	queueSize     = 64
)

// New creates a Watcher over inputDir. Subtitle files are handed to handler
// one at a time, in the order they finish being written.
func New(inputDir string, handler EventHandler, log logger.Logger) (Watcher, error) {
	if err := os.MkdirAll(inputDir, 0755); err != nil {
		return nil, fmt.Errorf("create input dir: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		inputDir: inputDir,
		handler:  handler,
		logger:   log,
		watcher:  watcher,
		settle:   defaultSettle,
		pending:  make(map[string]time.Time),
		queue:    make(chan string, queueSize),
	}, nil
}
