package main

import (
	"context"
	"os"

	"github.com/sandevgo/mnemo/internal/config"
	"github.com/sandevgo/mnemo/internal/core"
	"github.com/sandevgo/mnemo/pkg/log"
	"github.com/spf13/cobra"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:     "mnemo",
	Version: core.MnemoVersion,
	Short:   "Mnemo, long-term memory for conversational agents",
	Long: `Mnemo consolidates conversation transcripts into durable,
importance-weighted memories, keeps a sqlite record store and a vector
index in sync, and reshapes the memory set over time through decay,
pruning and user feedback.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
}

func setupLogger(ctx context.Context) (context.Context, func()) {
	isDebug := debug || config.IsDebug()
	return log.NewContextWithLogger(ctx, isDebug)
}
