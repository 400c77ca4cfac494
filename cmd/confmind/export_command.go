package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"confmind/internal/mindstore"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var conference string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a conference's summit document as markdown",
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

			document := mindstore.RenderSummit(m)
			if strings.TrimSpace(output) == "" {
				fmt.Fprint(cmd.OutOrStdout(), document)
				return nil
			}

			if err := os.WriteFile(output, []byte(document), 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %q to %s\n", m.Name, output)
			return nil
		},
	}

	cmd.Flags().StringVar(&conference, "conference", "", "Conference to export (most recent when omitted)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination file (stdout when omitted)")
	return cmd
}
