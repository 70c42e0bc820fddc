package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/mnemo/pkg/log"
)

type LLMConfig struct {
	// Provider selects the summarization backend: none, openai,
	// anthropic, ollama, custom. "none" disables LLM summarization and
	// every consolidation falls back to truncation.
	Provider string `env:"MNEMO_LLM_PROVIDER" envDefault:"none"`
	Model    string `env:"MNEMO_LLM_MODEL"`

	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`

	OllamaBaseURL string `env:"OLLAMA_BASE_URL" envDefault:"http://localhost:11434"`
	OllamaAPIKey  string `env:"OLLAMA_API_KEY"`

	CustomBaseURL string `env:"MNEMO_CUSTOM_BASE_URL"`
	CustomAPIKey  string `env:"MNEMO_CUSTOM_API_KEY"`
}

func NewLLMConfig(ctx context.Context) *LLMConfig {
	c := &LLMConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse llm config")
	}
	return c
}
