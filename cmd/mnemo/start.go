package main

import (
	"os"
	"os/signal"

	"github.com/sandevgo/mnemo/internal/service/memory"
	"github.com/sandevgo/mnemo/pkg/log"
	"github.com/sandevgo/mnemo/pkg/srv"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Run the resident maintenance service",
	Long:  `Starts the maintenance worker that periodically decays importance scores and prunes low-value memories from both stores.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting mnemo")

		a, err := buildApp(ctx)
		if err != nil {
			return err
		}

		services := append(a.cleanups,
			memory.NewWorker(a.engine, a.cfg.MaintenanceInterval))

		srv.StartServices(ctx, services)
		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("mnemo has been shut down gracefully")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
