package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newTensionsCommand(ctx *commandContext) *cobra.Command {
	var conference string

	cmd := &cobra.Command{
		Use:   "tensions",
		Short: "Show detected disagreements between speakers",
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
			if len(m.Tensions) == 0 {
				fmt.Fprintf(out, "No tensions detected in %q.\n", m.Name)
				return nil
			}

			rows := make([][]string, 0, len(m.Tensions))
			for _, tension := range m.Tensions {
				rows = append(rows, []string{
					tensionPair(tension.Speakers),
					strconv.Itoa(tension.ContrastSignals),
					tension.Note,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Speakers", "Signals", "Note"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&conference, "conference", "", "Conference to inspect (most recent when omitted)")
	return cmd
}
