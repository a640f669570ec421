package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sparta-contents/summary-note-maker/internal/ledger"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently processed files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLedger(func(store *ledger.Store) error {
				entries, err := store.Recent(cmd.Context(), limit)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintln(out, "No files processed yet.")
					return nil
				}
				fmt.Fprintln(out, renderTable(historyHeaders, historyRows(entries), nil))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of entries to show")
	return cmd
}

var historyHeaders = []string{"Processed", "File", "Status", "Output", "Message"}

func historyRows(entries []ledger.Entry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		processed := ""
		if !e.ProcessedAt.IsZero() {
			processed = e.ProcessedAt.Local().Format("2006-01-02 15:04")
		}
		rows = append(rows, []string{processed, e.FileName, string(e.Status), e.OutputRef, shorten(e.Message, 60)})
	}
	return rows
}
