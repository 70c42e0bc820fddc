package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	consolidateSession       string
	consolidateSummary       string
	consolidateUseSummarizer bool
)

var consolidateCmd = &cobra.Command{
	Use:   "consolidate [transcript]",
	Short: "Condense a session transcript into a memory entry",
	Long: `Consolidates a conversation transcript into a durable memory entry.
The transcript is taken from the argument, or from stdin when omitted.
A user-provided summary takes precedence over the summarizer.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		transcript := ""
		if len(args) == 1 {
			transcript = args[0]
		} else {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			transcript = string(data)
		}

		a, err := buildApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close(ctx)

		entry, err := a.engine.Consolidate(ctx, consolidateSession, transcript, consolidateSummary, consolidateUseSummarizer)
		if entry == nil {
			if err != nil {
				return err
			}
			fmt.Println("nothing to consolidate")
			return nil
		}
		// The entry may be committed even when the index write failed;
		// print it either way, the error decides the exit code.
		out, marshalErr := json.MarshalIndent(entry, "", "  ")
		if marshalErr != nil {
			return marshalErr
		}
		fmt.Println(string(out))
		return err
	},
}

func init() {
	consolidateCmd.Flags().StringVarP(&consolidateSession, "session", "s", "default", "session identifier")
	consolidateCmd.Flags().StringVarP(&consolidateSummary, "summary", "m", "", "user-provided summary (skips the summarizer)")
	consolidateCmd.Flags().BoolVar(&consolidateUseSummarizer, "use-summarizer", true, "summarize the transcript with the configured LLM")
	rootCmd.AddCommand(consolidateCmd)
}
