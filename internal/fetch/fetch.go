package fetch

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sparta-contents/summary-note-maker/internal/drive"
	"github.com/sparta-contents/summary-note-maker/internal/ledger"
	"github.com/sparta-contents/summary-note-maker/internal/notes"
	"github.com/sparta-contents/summary-note-maker/internal/processor"
)

var (
	// ErrNotSubtitle is returned for files whose name does not end in .srt.
	ErrNotSubtitle = errors.New("not an .srt file")
	// ErrEmptyContent is returned when the downloaded file is blank.
	ErrEmptyContent = errors.New("file content is empty")
	// ErrNoDestination is returned when neither Local nor Upload is set.
	ErrNoDestination = errors.New("nothing to do: enable local output or upload")
	// ErrNoParent is returned when Upload has no folder to put the notes in.
	ErrNoParent = errors.New("file has no parent folder, pass one explicitly")
)

// Fetch downloads one Drive subtitle file, summarizes it and saves the notes
// locally, on Drive, or both. Invalid model output is saved locally only and
// reported as processor.ErrInvalidOutput.
func (f *implFetcher) Fetch(ctx context.Context, fileID string, opts Options) (Result, error) {
	if !opts.Local && !opts.Upload {
		return Result{}, ErrNoDestination
	}

	file, err := f.drive.GetFile(ctx, fileID)
	if err != nil {
		return Result{}, err
	}
	result := Result{File: file}
	if len(drive.SubtitleFiles([]drive.File{file})) == 0 {
		return result, fmt.Errorf("%s: %w", file.Name, ErrNotSubtitle)
	}

	f.logger.Info(ctx, "Summarizing %s from Drive", file.Name)

	content, err := f.drive.Download(ctx, file.ID)
	if err != nil {
		return result, err
	}
	if strings.TrimSpace(content) == "" {
		return result, fmt.Errorf("%s: %w", file.Name, ErrEmptyContent)
	}
	result.ContentHash = ledger.HashContent(content)

	doc, err := f.generator.Generate(ctx, content, file.Name)
	if err != nil {
		return result, err
	}
	result.Document = doc
	_, failed := doc.Failure()

	if opts.Local || failed {
		paths, err := f.writer.Write(ctx, file.Name, doc)
		if err != nil {
			return result, fmt.Errorf("write notes: %w", err)
		}
		result.Paths = paths
	}
	if failed {
		return result, fmt.Errorf("%s: %w (raw response saved to %s)", file.Name, processor.ErrInvalidOutput, result.Paths.JSON)
	}

	if opts.Upload {
		link, err := f.upload(ctx, file, opts.ParentID, doc)
		if err != nil {
			return result, err
		}
		result.Link = link
		f.logger.Info(ctx, "Uploaded notes for %s: %s", file.Name, link)
	}
	return result, nil
}

func (f *implFetcher) upload(ctx context.Context, file drive.File, parentID string, doc notes.Document) (string, error) {
	if parentID == "" {
		if len(file.Parents) == 0 {
			return "", ErrNoParent
		}
		parentID = file.Parents[0]
	}

	folderID, err := f.drive.EnsureFolder(ctx, parentID, f.outputFolder)
	if err != nil {
		return "", fmt.Errorf("prepare output folder %q: %w", f.outputFolder, err)
	}
	data, err := notes.Encode(doc)
	if err != nil {
		return "", err
	}
	link, err := f.drive.Upload(ctx, folderID, notes.OutputName(file.Name), data)
	if err != nil {
		return "", fmt.Errorf("upload notes: %w", err)
	}
	return link, nil
}
