package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newDeleteCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <conference>",
		Short: "Delete a stored conference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if name == "" {
				return fmt.Errorf("conference name required")
			}

			p, err := ctx.newPipeline()
			if err != nil {
				return err
			}
			if err := p.Delete(name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q\n", name)
			return nil
		},
	}
	return cmd
}
