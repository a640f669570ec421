package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/sparta-contents/summary-note-maker/internal/config"
	"github.com/sparta-contents/summary-note-maker/internal/drive"
	"github.com/sparta-contents/summary-note-maker/internal/ledger"
	"github.com/sparta-contents/summary-note-maker/internal/logger"
	"github.com/sparta-contents/summary-note-maker/internal/output"
	"github.com/sparta-contents/summary-note-maker/internal/processor"
	"github.com/sparta-contents/summary-note-maker/internal/summarizer"
)

type commandContext struct {
	configFlag *string
	verbose    *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     logger.Logger
}

func newCommandContext(configFlag *string, verbose *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		verbose:    verbose,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.verbose != nil && *c.verbose {
			cfg.Logging.Level = "debug"
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// log writes to stderr so command output on stdout stays clean.
func (c *commandContext) log() logger.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logger.NewWithFormat("info", "text", os.Stderr)
			return
		}
		c.logger = logger.NewWithFormat(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)
	})
	return c.logger
}

func (c *commandContext) processor() (processor.Processor, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.RequireGemini(); err != nil {
		return nil, err
	}
	log := c.log()
	sum := summarizer.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
	return processor.New(cfg, sum, c.writer(cfg), log), nil
}

func (c *commandContext) writer(cfg *config.Config) output.Writer {
	return output.New(cfg.Paths.Output, cfg.Output.Docx, c.log())
}

func (c *commandContext) drive(ctx context.Context) (drive.Drive, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.RequireDrive(); err != nil {
		return nil, err
	}
	return drive.New(ctx, cfg.Drive.CredentialsFile, c.log())
}

// withLedger opens the ledger for the duration of fn.
func (c *commandContext) withLedger(fn func(*ledger.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := ledger.Open(cfg.Paths.State)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	defer store.Close()
	return fn(store)
}
