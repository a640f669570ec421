package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sparta-contents/summary-note-maker/internal/notes"
	"github.com/sparta-contents/summary-note-maker/internal/transcript"
)

// Generate orchestrates the summary pipeline for one subtitle file
func (p *implProcessor) Generate(ctx context.Context, content, fileName string) (notes.Document, error) {
	startTime := time.Now()

	// Step 1: Flatten subtitles into a time-annotated transcript
	text := transcript.Normalize(content)
	if text == "" {
		return nil, fmt.Errorf("%s: %w", fileName, ErrEmptyTranscript)
	}
	p.logger.Debug(ctx, "Transcript for %s: %d bytes", fileName, len(text))

	// Step 2: Build the instruction
	prompt := notes.BuildPrompt(text, fileName)

	// Step 3: Call the model under its own deadline
	raw, err := p.summarize(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", fileName, ErrSummarize, err)
	}

	// Step 4: Repair and finalize the model output
	doc := notes.Sanitize(raw)
	if rec, failed := doc.Failure(); failed {
		p.logger.Warn(ctx, "Invalid model output for %s: %s", fileName, rec.Error)
	} else {
		p.logger.Info(ctx, "Generated %d sections for %s in %s", len(doc.Sections()), fileName, time.Since(startTime).Round(time.Millisecond))
	}
	return doc, nil
}

func (p *implProcessor) summarize(ctx context.Context, prompt string) (string, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	return p.summarizer.Generate(ctx, prompt)
}

// ProcessFile reads a local subtitle file, generates its notes and writes them
// to the output directory. An error-record document is still written so the
// raw response can be inspected; ErrInvalidOutput is returned alongside it.
func (p *implProcessor) ProcessFile(ctx context.Context, srtPath string) (Result, error) {
	fileName := filepath.Base(srtPath)

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting summary: %s", srtPath)
	p.logger.Info(ctx, "========================================")

	f, err := os.Open(srtPath)
	if err != nil {
		return Result{}, fmt.Errorf("open subtitle: %w", err)
	}
	content, err := transcript.Decode(f)
	f.Close()
	if err != nil {
		return Result{}, err
	}

	doc, err := p.Generate(ctx, content, fileName)
	if err != nil {
		return Result{}, err
	}

	paths, err := p.writer.Write(ctx, fileName, doc)
	if err != nil {
		return Result{Document: doc}, fmt.Errorf("write notes: %w", err)
	}

	result := Result{Document: doc, Paths: paths}
	if _, failed := doc.Failure(); failed {
		return result, fmt.Errorf("%s: %w (raw response saved to %s)", fileName, ErrInvalidOutput, paths.JSON)
	}

	p.logger.Info(ctx, "Output notes: %s", paths.JSON)
	if paths.Docx != "" {
		p.logger.Info(ctx, "Output docx: %s", paths.Docx)
	}
	return result, nil
}
