package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sparta-contents/summary-note-maker/internal/drive"
	"github.com/sparta-contents/summary-note-maker/internal/fetch"
	"github.com/sparta-contents/summary-note-maker/internal/ledger"
)

func newFetchCommand(ctx *commandContext) *cobra.Command {
	var (
		local  bool
		upload bool
		folder string
	)

	cmd := &cobra.Command{
		Use:   "fetch <file-url|id>",
		Short: "Summarize one subtitle file from Google Drive",
		Long: "Download one .srt file from Google Drive and summarize it. The notes are\n" +
			"saved to the output directory and, with --upload, into the output folder\n" +
			"next to the subtitle file (or under --folder).",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileID, ok := drive.ExtractFileID(args[0])
			if !ok {
				return fmt.Errorf("not a Google Drive file link or id: %q", args[0])
			}
			opts := fetch.Options{Local: local, Upload: upload}
			if folder != "" {
				parentID, err := folderArg(folder)
				if err != nil {
					return err
				}
				opts.ParentID = parentID
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
			f := fetch.New(d, proc, ctx.writer(cfg), cfg.Drive.OutputFolder, ctx.log())

			return ctx.withLedger(func(store *ledger.Store) error {
				res, err := f.Fetch(cmd.Context(), fileID, opts)
				label := res.File.Name
				if label == "" {
					label = fileID
				}

				entry := ledger.Entry{SourceID: fileID, FileName: label, ContentHash: res.ContentHash, OutputRef: fetchOutputRef(res)}
				if err != nil {
					entry.Status, entry.Message = ledger.StatusFailed, err.Error()
				} else {
					entry.Status = ledger.StatusDone
				}
				if res.ContentHash != "" {
					if recErr := store.Record(cmd.Context(), entry); recErr != nil {
						ctx.log().Warn(cmd.Context(), "Failed to record %s in ledger: %v", label, recErr)
					}
				}

				if err != nil {
					fmt.Fprintln(out, renderStatusLine(label, statusError, err.Error(), colorize))
					return err
				}
				if res.Paths.JSON != "" {
					fmt.Fprintln(out, renderStatusLine(label, statusOK, res.Paths.JSON, colorize))
				}
				if res.Link != "" {
					fmt.Fprintln(out, renderStatusLine(label, statusOK, "uploaded "+res.Link, colorize))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&local, "local", true, "Save the notes to the output directory")
	cmd.Flags().BoolVar(&upload, "upload", false, "Upload the notes to Google Drive")
	cmd.Flags().StringVar(&folder, "folder", "", "Drive folder (link or id) that holds the output folder")
	return cmd
}

func fetchOutputRef(res fetch.Result) string {
	if res.Link != "" {
		return res.Link
	}
	return res.Paths.JSON
}
