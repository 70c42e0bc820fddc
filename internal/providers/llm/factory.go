package llm

import (
	"context"
	"fmt"

	"github.com/sandevgo/mnemo/internal/config"
	"github.com/sandevgo/mnemo/internal/core"
	"github.com/sandevgo/mnemo/pkg/log"
)

// NewProvider creates the summarization backend selected by config.
// Provider "none" returns nil: consolidation then always falls back to
// transcript truncation.
func NewProvider(ctx context.Context, cfg *config.LLMConfig) (core.AIProvider, error) {
	if cfg.Provider == "none" || cfg.Provider == "" {
		log.FromCtx(ctx).Info().Msg("llm summarization disabled")
		return nil, nil
	}

	log.FromCtx(ctx).Info().
		Str("provider", cfg.Provider).
		Str("model", cfg.Model).
		Msg("starting llm provider")

	switch cfg.Provider {
	case "openai":
		return NewOpenAI(cfg.OpenAIAPIKey, cfg.Model), nil
	case "anthropic":
		return NewAnthropic(cfg.AnthropicAPIKey, cfg.Model), nil
	case "ollama":
		return NewOllama(cfg.OllamaBaseURL, cfg.OllamaAPIKey, cfg.Model), nil
	case "custom":
		return NewOpenAICompatible(OpenAICompatibleConfig{
			BaseURL:    cfg.CustomBaseURL,
			APIKey:     cfg.CustomAPIKey,
			Model:      cfg.Model,
			AuthHeader: "Authorization",
			AuthPrefix: "Bearer ",
		}), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
}
