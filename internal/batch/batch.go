package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sparta-contents/summary-note-maker/internal/drive"
	"github.com/sparta-contents/summary-note-maker/internal/ledger"
	"github.com/sparta-contents/summary-note-maker/internal/notes"
)

// ErrLocked means another batch run holds the lock.
var ErrLocked = errors.New("another batch run is already in progress")

const skippedMessage = "unchanged since last run"

// Run processes the .srt files of folderID sequentially and uploads each
// result into the output folder. A failing file is reported and skipped; only
// setup failures and cancellation end the run early.
func (r *implRunner) Run(ctx context.Context, folderID string, opts Options) (Report, error) {
	report := Report{FolderID: folderID}

	if err := os.MkdirAll(filepath.Dir(r.lock.Path()), 0755); err != nil {
		return report, fmt.Errorf("create lock dir: %w", err)
	}
	locked, err := r.lock.TryLock()
	if err != nil {
		return report, fmt.Errorf("acquire lock: %w", err)
	}
	if !locked {
		return report, ErrLocked
	}
	defer func() { _ = r.lock.Unlock() }()

	files, err := r.drive.ListFiles(ctx, folderID)
	if err != nil {
		return report, fmt.Errorf("list files: %w", err)
	}
	srtFiles := drive.SubtitleFiles(files)
	if len(srtFiles) == 0 {
		r.logger.Info(ctx, "No SRT files found in folder %s", folderID)
		return report, nil
	}

	targetID, err := r.drive.EnsureFolder(ctx, folderID, r.outputFolder)
	if err != nil {
		return report, fmt.Errorf("prepare output folder %q: %w", r.outputFolder, err)
	}
	report.OutputFolderID = targetID

	r.logger.Info(ctx, "Found %d SRT files to summarize", len(srtFiles))

	for i, f := range srtFiles {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		r.logger.Info(ctx, "[%d/%d] Summarizing: %s", i+1, len(srtFiles), f.Name)

		result := r.processFile(ctx, targetID, f, opts.Force)
		report.Results = append(report.Results, result)
		if opts.OnResult != nil {
			opts.OnResult(result)
		}
	}

	ok, warned, failed, skipped := report.Counts()
	r.logger.Info(ctx, "Summary complete: %d success, %d skipped, %d warnings, %d failed", ok, skipped, warned, failed)
	return report, nil
}

// processFile runs one file through download, generate and upload. It never
// returns an error; every failure becomes the file's outcome.
func (r *implRunner) processFile(ctx context.Context, targetID string, f drive.File, force bool) FileResult {
	start := time.Now()
	result := FileResult{FileID: f.ID, Name: f.Name, OutputName: notes.OutputName(f.Name)}

	content, err := r.drive.Download(ctx, f.ID)
	if err != nil || strings.TrimSpace(content) == "" {
		msg := "could not fetch file content, skipping"
		if err != nil {
			msg = fmt.Sprintf("%s: %v", msg, err)
		}
		r.logger.Warn(ctx, "%s: %s", f.Name, msg)
		return result.finish(OutcomeWarn, msg, start)
	}

	hash := ledger.HashContent(content)
	if !force && r.ledger != nil {
		prev, found, err := r.ledger.LookupDone(ctx, f.ID, hash)
		if err != nil {
			r.logger.Warn(ctx, "Ledger lookup failed for %s: %v", f.Name, err)
		} else if found {
			result.Link = prev.OutputRef
			r.logger.Info(ctx, "[SKIP] %s already summarized", f.Name)
			r.record(ctx, f, hash, ledger.StatusSkipped, prev.OutputRef, skippedMessage)
			return result.finish(OutcomeSkipped, skippedMessage, start)
		}
	}

	doc, err := r.generator.Generate(ctx, content, f.Name)
	if err != nil {
		r.logger.Error(ctx, "Failed to summarize %s: %v", f.Name, err)
		r.record(ctx, f, hash, ledger.StatusFailed, "", err.Error())
		return result.finish(OutcomeError, err.Error(), start)
	}
	if rec, failed := doc.Failure(); failed {
		msg := rec.Error
		if rec.RawResponse != "" {
			msg = fmt.Sprintf("%s: %s", rec.Error, rec.RawResponse)
		}
		r.logger.Error(ctx, "Summary generation failed for %s: %s", f.Name, rec.Error)
		r.record(ctx, f, hash, ledger.StatusFailed, "", rec.Error)
		return result.finish(OutcomeError, msg, start)
	}
	result.Sections = len(doc.Sections())

	data, err := notes.Encode(doc)
	if err != nil {
		r.record(ctx, f, hash, ledger.StatusFailed, "", err.Error())
		return result.finish(OutcomeError, err.Error(), start)
	}

	link, err := r.drive.Upload(ctx, targetID, result.OutputName, data)
	if err != nil {
		r.logger.Error(ctx, "Failed to upload %s: %v", result.OutputName, err)
		r.record(ctx, f, hash, ledger.StatusFailed, "", err.Error())
		return result.finish(OutcomeError, fmt.Sprintf("upload failed: %v", err), start)
	}
	result.Link = link
	r.record(ctx, f, hash, ledger.StatusDone, link, "")

	r.logger.Info(ctx, "[DONE] %s -> %s", f.Name, result.OutputName)
	return result.finish(OutcomeOK, "created", start)
}

func (r *implRunner) record(ctx context.Context, f drive.File, hash string, status ledger.Status, ref, msg string) {
	if r.ledger == nil {
		return
	}
	err := r.ledger.Record(ctx, ledger.Entry{
		SourceID:    f.ID,
		FileName:    f.Name,
		ContentHash: hash,
		Status:      status,
		OutputRef:   ref,
		Message:     msg,
	})
	if err != nil {
		r.logger.Warn(ctx, "Failed to record %s in ledger: %v", f.Name, err)
	}
}
