package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sparta-contents/summary-note-maker/internal/batch"
	"github.com/sparta-contents/summary-note-maker/internal/ledger"
)

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "batch <folder-url|id>",
		Short: "Summarize every subtitle file of a Google Drive folder",
		Long: "Summarize every .srt file of a Google Drive folder one at a time and upload\n" +
			"the JSON notes into the configured output folder next to them. A failing\n" +
			"file is reported and the run continues with the next one.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folderID, err := folderArg(args[0])
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			proc, err := ctx.processor()
			if err != nil {
				return err
			}
			d, err := ctx.drive(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			return ctx.withLedger(func(store *ledger.Store) error {
				runner := batch.New(d, proc, store, cfg.Drive.OutputFolder, cfg.Paths.State, ctx.log())
				report, err := runner.Run(cmd.Context(), folderID, batch.Options{
					Force: force,
					OnResult: func(res batch.FileResult) {
						fmt.Fprintln(out, renderStatusLine(res.Name, outcomeStatus(res.Outcome), resultDetail(res), colorize))
					},
				})
				if len(report.Results) > 0 {
					fmt.Fprintln(out)
					fmt.Fprintln(out, report.Table())
				}
				if err != nil {
					return err
				}
				if len(report.Results) == 0 {
					fmt.Fprintln(out, "No SRT files found in this folder.")
					return nil
				}
				if report.HasFailures() {
					_, warned, failed, _ := report.Counts()
					return fmt.Errorf("batch finished with %d warnings and %d errors", warned, failed)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Re-summarize files that were already processed")
	return cmd
}

func outcomeStatus(o batch.Outcome) statusKind {
	switch o {
	case batch.OutcomeOK:
		return statusOK
	case batch.OutcomeWarn:
		return statusWarn
	case batch.OutcomeError:
		return statusError
	default:
		return statusInfo
	}
}

func resultDetail(res batch.FileResult) string {
	if res.Link != "" {
		return fmt.Sprintf("%s (%s)", res.Message, res.Link)
	}
	return res.Message
}
