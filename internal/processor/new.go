package processor

import (
	"time"

	"github.com/sparta-contents/summary-note-maker/internal/config"
	"github.com/sparta-contents/summary-note-maker/internal/logger"
	"github.com/sparta-contents/summary-note-maker/internal/output"
	"github.com/sparta-contents/summary-note-maker/internal/summarizer"
)

type implProcessor struct {
	cfg        *config.Config
	summarizer summarizer.Summarizer
	writer     output.Writer
	logger     logger.Logger
	timeout    time.Duration
}

// New creates a new Processor instance
func New(cfg *config.Config, sum summarizer.Summarizer, writer output.Writer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		summarizer: sum,
		writer:     writer,
		logger:     log,
		timeout:    time.Duration(cfg.Gemini.TimeoutSeconds) * time.Second,
	}
}
