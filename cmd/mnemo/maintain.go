package main

import (
	"github.com/spf13/cobra"
)

var maintainCmd = &cobra.Command{
	Use:   "maintain",
	Short: "Run one decay-and-prune sweep",
	Long: `Decays the importance of memories untouched for 30 days and prunes
entries whose importance fell below the floor from both stores.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		a, err := buildApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close(ctx)

		return a.engine.RunMaintenance(ctx)
	},
}

func init() {
	rootCmd.AddCommand(maintainCmd)
}
