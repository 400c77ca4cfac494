package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAskCommand(ctx *commandContext) *cobra.Command {
	var conference string
	var speaker string

	cmd := &cobra.Command{
		Use:   "ask <question>...",
		Short: "Ask the conference a question and get attributed answers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")

			p, err := ctx.newPipeline()
			if err != nil {
				return err
			}
			name, err := resolveConference(p, conference)
			if err != nil {
				return err
			}

			answer, err := p.Ask(cmd.Context(), question, name, speaker)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), answer)
			return nil
		},
	}

	cmd.Flags().StringVar(&conference, "conference", "", "Conference to query (most recent when omitted)")
	cmd.Flags().StringVarP(&speaker, "speaker", "s", "", "Restrict answers to speakers whose name contains this")
	return cmd
}
