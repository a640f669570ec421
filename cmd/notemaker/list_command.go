package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sparta-contents/summary-note-maker/internal/drive"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list <folder-url|id>",
		Short: "List the subtitle files of a Google Drive folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folderID, err := folderArg(args[0])
			if err != nil {
				return err
			}
			d, err := ctx.drive(cmd.Context())
			if err != nil {
				return err
			}
			files, err := d.ListFiles(cmd.Context(), folderID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			srtFiles := drive.SubtitleFiles(files)
			if len(srtFiles) == 0 {
				fmt.Fprintln(out, "No SRT files found in this folder.")
				return nil
			}

			rows := make([][]string, 0, len(srtFiles))
			for i, f := range srtFiles {
				rows = append(rows, []string{strconv.Itoa(i + 1), f.Name, f.ID})
			}
			fmt.Fprintln(out, renderTable([]string{"#", "Name", "ID"}, rows, []columnAlignment{alignRight, alignLeft, alignLeft}))
			fmt.Fprintf(out, "%d SRT files found.\n", len(srtFiles))
			return nil
		},
	}
}

func folderArg(ref string) (string, error) {
	id, ok := drive.ExtractFolderID(ref)
	if !ok {
		return "", fmt.Errorf("not a Google Drive folder link or id: %q", ref)
	}
	return id, nil
}
