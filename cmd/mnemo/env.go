package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sandevgo/mnemo/internal/config"
	"github.com/sandevgo/mnemo/pkg/env"
	"github.com/spf13/cobra"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Write a starter .env to the runtime directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		runtimePath := config.GetRuntimePath()
		if err := os.MkdirAll(runtimePath, 0755); err != nil {
			return fmt.Errorf("create runtime directory: %w", err)
		}

		envPath := filepath.Join(runtimePath, ".env")
		if _, err := os.Stat(envPath); err == nil {
			return fmt.Errorf("%s already exists", envPath)
		}

		var content string
		for _, cfg := range []any{
			config.NewAppConfig(ctx),
			config.NewLLMConfig(ctx),
			config.NewIndexConfig(ctx),
		} {
			part, err := env.MarshalEnv(cfg)
			if err != nil {
				return fmt.Errorf("marshal env: %w", err)
			}
			content += part
		}

		if err := os.WriteFile(envPath, []byte(content), 0600); err != nil {
			return fmt.Errorf("write %s: %w", envPath, err)
		}
		fmt.Printf("wrote %s\n", envPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(envCmd)
}
