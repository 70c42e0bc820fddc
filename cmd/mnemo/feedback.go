package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var feedbackSummary string

var feedbackCmd = &cobra.Command{
	Use:   "feedback <id> <importance>",
	Short: "Correct a memory's importance or summary",
	Long: `Overwrites the importance score (clamped to [0,1]) of a stored memory
and optionally replaces its summary. The vector index is re-synced when
something actually changed.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q: %w", args[0], err)
		}
		importance, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid importance %q: %w", args[1], err)
		}

		a, err := buildApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close(ctx)

		if !a.engine.ApplyFeedback(ctx, id, importance, feedbackSummary) {
			return fmt.Errorf("memory %d not found", id)
		}
		fmt.Printf("feedback applied to memory %d\n", id)
		return nil
	},
}

func init() {
	feedbackCmd.Flags().StringVarP(&feedbackSummary, "summary", "m", "", "replacement summary (blank keeps the stored one)")
	rootCmd.AddCommand(feedbackCmd)
}
