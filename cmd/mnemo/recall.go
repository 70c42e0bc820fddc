package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var recallTopK int

var recallCmd = &cobra.Command{
	Use:   "recall <query>",
	Short: "Retrieve memories relevant to a query",
	Long: `Searches the vector index for memories semantically close to the query
and resolves them against the record store. An empty result is a normal
outcome, not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		a, err := buildApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close(ctx)

		topK := recallTopK
		if topK <= 0 {
			topK = a.cfg.DefaultTopK
		}

		entries := a.engine.Retrieve(ctx, args[0], topK)
		if len(entries) == 0 {
			fmt.Println("no relevant memories")
			return nil
		}

		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	recallCmd.Flags().IntVarP(&recallTopK, "top-k", "k", 0, "maximum number of memories to return")
	rootCmd.AddCommand(recallCmd)
}
