package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored conferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ctx.newPipeline()
			if err != nil {
				return err
			}
			entries, err := p.List()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No conferences stored.")
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{
					entry.Name,
					formatCreated(entry),
					strconv.Itoa(entry.SpeakerCount),
					strconv.Itoa(len(entry.Themes)),
					strconv.Itoa(len(entry.Tensions)),
					entry.SourceFile,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Conference", "Created", "Speakers", "Themes", "Tensions", "Source"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}
	return cmd
}
