package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sparta-contents/summary-note-maker/internal/logger"
)

type implWatcher struct {
	inputDir string
	handler  EventHandler
	logger   logger.Logger
	watcher  *fsnotify.Watcher
	settle   time.Duration
	pending  map[string]time.Time
	queue    chan string
	wg       sync.WaitGroup
}

// Start monitors the input directory for subtitle files until ctx is done or
// the watcher is stopped. A file is queued once no write has touched it for
// the settle period. Start returns only after the queue has drained.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started. Monitoring: %s", w.inputDir)

	w.wg.Add(1)
	go w.work(ctx)

	err := w.loop(ctx)

	w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
	close(w.queue)
	w.wg.Wait()
	w.logger.Info(ctx, "File watcher stopped")
	return err
}

func (w *implWatcher) loop(ctx context.Context) error {
	ticker := time.NewTicker(w.settle / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !isSubtitleFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-subtitle file: %s", event.Name)
				continue
			}
			if _, seen := w.pending[event.Name]; !seen {
				w.logger.Info(ctx, "New subtitle detected: %s", event.Name)
			}
			w.pending[event.Name] = time.Now().Add(w.settle)

		case now := <-ticker.C:
			w.flush(ctx, now)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// flush queues every pending file whose settle deadline has passed.
func (w *implWatcher) flush(ctx context.Context, now time.Time) {
	for path, due := range w.pending {
		if now.Before(due) {
			continue
		}
		select {
		case w.queue <- path:
			delete(w.pending, path)
		default:
			w.logger.Warn(ctx, "Processing queue full, delaying %s", path)
			return
		}
	}
}

func (w *implWatcher) work(ctx context.Context) {
	defer w.wg.Done()
	for path := range w.queue {
		if ctx.Err() != nil {
			return
		}
		if err := w.handler(ctx, path); err != nil {
			w.logger.Error(ctx, "Failed to process %s: %v", path, err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func isSubtitleFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".srt")
}
