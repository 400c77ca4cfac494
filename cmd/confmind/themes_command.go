package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newThemesCommand(ctx *commandContext) *cobra.Command {
	var conference string

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "Show a conference's dominant themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ctx.newPipeline()
			if err != nil {
				return err
			}
			name, err := resolveConference(p, conference)
			if err != nil {
				return err
			}
			m, err := p.Load(cmd.Context(), name)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(m.Themes) == 0 {
				fmt.Fprintf(out, "No dominant themes detected in %q.\n", m.Name)
				return nil
			}

			rows := make([][]string, 0, len(m.Themes))
			for _, theme := range m.Themes {
				rows = append(rows, []string{theme.Term, strconv.Itoa(theme.Frequency)})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Theme", "Frequency"},
				rows,
				[]columnAlignment{alignLeft, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&conference, "conference", "", "Conference to inspect (most recent when omitted)")
	return cmd
}
