package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sparta-contents/summary-note-maker/internal/ledger"
	"github.com/sparta-contents/summary-note-maker/internal/watcher"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Summarize subtitle files as they appear in the input directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			proc, err := ctx.processor()
			if err != nil {
				return err
			}
			log := ctx.log()
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			return ctx.withLedger(func(store *ledger.Store) error {
				handler := func(hctx context.Context, path string) error {
					kind, message := processLocal(hctx, ctx, proc, store, path)
					fmt.Fprintln(out, renderStatusLine(filepath.Base(path), kind, message, colorize))
					if kind == statusError {
						return errors.New(message)
					}
					return nil
				}

				w, err := watcher.New(cfg.Paths.Input, handler, log)
				if err != nil {
					return err
				}
				defer w.Stop()

				log.Info(cmd.Context(), "Watching %s, notes go to %s. Press Ctrl+C to stop", cfg.Paths.Input, cfg.Paths.Output)
				if err := w.Start(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
					return err
				}
				log.Info(context.Background(), "Watcher stopped")
				return nil
			})
		},
	}
}
