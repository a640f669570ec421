package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sparta-contents/summary-note-maker/internal/notes"
)

// Write encodes doc as <dir>/<source>.json and, if enabled, <dir>/<source>.docx.
// Error-record documents are written as JSON only.
func (w *implWriter) Write(ctx context.Context, sourceName string, doc notes.Document) (Paths, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return Paths{}, fmt.Errorf("create output dir: %w", err)
	}

	data, err := notes.Encode(doc)
	if err != nil {
		return Paths{}, err
	}

	jsonName := notes.OutputName(filepath.Base(sourceName))
	paths := Paths{JSON: filepath.Join(w.dir, jsonName)}
	if err := writeFileAtomic(paths.JSON, data); err != nil {
		return Paths{}, err
	}
	w.logger.Debug(ctx, "Wrote %s (%d bytes)", paths.JSON, len(data))

	if !w.docx {
		return paths, nil
	}
	if _, failed := doc.Failure(); failed {
		return paths, nil
	}

	title := strings.TrimSuffix(jsonName, filepath.Ext(jsonName))
	docxPath := filepath.Join(w.dir, title+".docx")
	if err := notesToDocx(title, doc.Sections(), docxPath); err != nil {
		w.logger.Warn(ctx, "Failed to write docx %s: %v", docxPath, err)
		return paths, nil
	}
	paths.Docx = docxPath
	return paths, nil
}

// writeFileAtomic writes through a temp file in the same directory so a
// crash never leaves a truncated JSON behind.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".notes-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("move into place %s: %w", path, err)
	}
	return nil
}
