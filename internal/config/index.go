package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/mnemo/pkg/log"
)

type IndexConfig struct {
	// Embedder selects how the vector index embeds summaries:
	// ollama or openai.
	Embedder       string `env:"MNEMO_EMBEDDER" envDefault:"ollama"`
	EmbeddingModel string `env:"MNEMO_EMBEDDING_MODEL" envDefault:"nomic-embed-text"`

	// Persist keeps the index on disk under the runtime path; when
	// false the index lives in memory only.
	Persist bool `env:"MNEMO_INDEX_PERSIST" envDefault:"true"`
}

func NewIndexConfig(ctx context.Context) *IndexConfig {
	c := &IndexConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse index config")
	}
	return c
}
