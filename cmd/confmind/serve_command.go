package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"confmind/internal/ipc"
	"confmind/internal/logging"
	"confmind/internal/pipeline"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the conference mind over a unix socket",
		Long: `Serve exposes ingest and query operations over a JSON-RPC unix socket
so other tools can drive confmind without shelling out. The server runs
until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			socket, err := ctx.socketPath()
			if err != nil {
				return err
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("initialize logging: %w", err)
			}

			p, err := pipeline.New(cfg, logger)
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			server, err := ipc.NewServer(runCtx, socket, p, logger)
			if err != nil {
				return fmt.Errorf("start server: %w", err)
			}
			defer server.Close()

			server.Serve()
			logger.Info("serving", logging.String("socket", socket))
			fmt.Fprintf(cmd.OutOrStdout(), "Listening on %s\n", socket)

			<-runCtx.Done()
			logger.Info("shutting down")
			return nil
		},
	}
	return cmd
}
