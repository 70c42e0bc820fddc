package chromem

import (
	"fmt"

	chromem "github.com/philippgille/chromem-go"

	"github.com/sandevgo/mnemo/internal/config"
)

// NewEmbeddingFunc builds the embedding function backing the index from
// configuration. chromem ships the HTTP clients; nothing is embedded
// locally.
func NewEmbeddingFunc(cfg *config.IndexConfig, llmCfg *config.LLMConfig) (chromem.EmbeddingFunc, error) {
	switch cfg.Embedder {
	case "ollama":
		return chromem.NewEmbeddingFuncOllama(cfg.EmbeddingModel, llmCfg.OllamaBaseURL+"/api"), nil
	case "openai":
		return chromem.NewEmbeddingFuncOpenAI(llmCfg.OpenAIAPIKey, chromem.EmbeddingModelOpenAI(cfg.EmbeddingModel)), nil
	default:
		return nil, fmt.Errorf("unknown embedder: %s", cfg.Embedder)
	}
}
