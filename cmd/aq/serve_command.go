package main

import (
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"aqcalc/internal/logging"
	"aqcalc/internal/metrics"
	"aqcalc/internal/server"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bind string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP scoring and export service",
		RunE: func(cmd *cobra.Command, args []string) error {
			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			p, err := ctx.newPipeline(cmd)
			if err != nil {
				return err
			}
			opts := server.OptionsFromConfig(cfg)
			if strings.TrimSpace(bind) != "" {
				opts.Bind = bind
			}

			logger := ctx.log(cmd)
			srv := server.New(opts, p, metrics.New(), logger)
			if err := srv.Start(signalCtx); err != nil {
				return err
			}
			<-signalCtx.Done()
			logger.Info("shutting down", logging.String("address", srv.Addr()))
			srv.Stop()
			return nil
		},
	}

	cmd.Flags().StringVar(&bind, "bind", "", "Listen address (defaults to server.bind)")
	return cmd
}
