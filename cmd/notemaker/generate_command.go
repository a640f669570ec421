package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sparta-contents/summary-note-maker/internal/ledger"
	"github.com/sparta-contents/summary-note-maker/internal/processor"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "generate <file.srt>...",
		Short: "Summarize local subtitle files into the output directory",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proc, err := ctx.processor()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			return ctx.withLedger(func(store *ledger.Store) error {
				var failed int
				for _, path := range args {
					if err := cmd.Context().Err(); err != nil {
						return err
					}
					kind, message := processLocal(cmd.Context(), ctx, proc, store, path)
					if kind == statusError {
						failed++
					}
					fmt.Fprintln(out, renderStatusLine(filepath.Base(path), kind, message, colorize))
				}
				if failed > 0 {
					return fmt.Errorf("%d of %d files failed", failed, len(args))
				}
				return nil
			})
		},
	}
}

// processLocal summarizes one local file and records the outcome in the
// ledger. It returns the status line to show for it.
func processLocal(ctx context.Context, cc *commandContext, proc processor.Processor, store *ledger.Store, path string) (statusKind, string) {
	entry := ledger.Entry{SourceID: path, FileName: filepath.Base(path)}
	if abs, err := filepath.Abs(path); err == nil {
		entry.SourceID = abs
	}
	if data, err := os.ReadFile(path); err == nil {
		entry.ContentHash = ledger.HashContent(string(data))
	}

	result, err := proc.ProcessFile(ctx, path)
	kind, message := statusOK, result.Paths.JSON
	if err != nil {
		kind, message = statusError, err.Error()
		entry.Status = ledger.StatusFailed
		entry.Message = err.Error()
		entry.OutputRef = result.Paths.JSON
	} else {
		if n := len(result.Document.Sections()); n > 0 {
			message = fmt.Sprintf("%s (%d sections)", result.Paths.JSON, n)
		}
		entry.Status = ledger.StatusDone
		entry.OutputRef = result.Paths.JSON
	}

	if recErr := store.Record(ctx, entry); recErr != nil {
		cc.log().Warn(ctx, "Failed to record %s in ledger: %v", path, recErr)
	}
	return kind, message
}
