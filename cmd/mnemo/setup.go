package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/mnemo/internal/config"
	chromemindex "github.com/sandevgo/mnemo/internal/index/chromem"
	"github.com/sandevgo/mnemo/internal/providers/llm"
	"github.com/sandevgo/mnemo/internal/service/memory"
	"github.com/sandevgo/mnemo/internal/storage/sqlite"
	"github.com/sandevgo/mnemo/pkg/srv"
)

// app bundles the wired engine with the resources that need teardown.
// Everything expensive (db handle, index, provider) is constructed once
// here and injected into the engine.
type app struct {
	cfg      *config.AppConfig
	engine   *memory.Engine
	cleanups []srv.Service
}

func buildApp(ctx context.Context) (*app, error) {
	if err := initEnv(config.GetRuntimePath()); err != nil {
		return nil, fmt.Errorf("init env: %w", err)
	}

	appCfg := config.NewAppConfig(ctx)
	llmCfg := config.NewLLMConfig(ctx)
	indexCfg := config.NewIndexConfig(ctx)

	db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	cleanups := []srv.Service{srv.NewCleanup(db.Close)}

	embed, err := chromemindex.NewEmbeddingFunc(indexCfg, llmCfg)
	if err != nil {
		return nil, fmt.Errorf("init embedding: %w", err)
	}

	indexPath := ""
	if indexCfg.Persist {
		indexPath = appCfg.GetIndexPath()
	}
	index, err := chromemindex.New(indexPath, embed)
	if err != nil {
		return nil, fmt.Errorf("init vector index: %w", err)
	}

	provider, err := llm.NewProvider(ctx, llmCfg)
	if err != nil {
		return nil, fmt.Errorf("init llm provider: %w", err)
	}

	repo := sqlite.NewMemoryRepo(db)
	engine := memory.NewEngine(repo, index, provider)

	return &app{
		cfg:      appCfg,
		engine:   engine,
		cleanups: cleanups,
	}, nil
}

func (a *app) Close(ctx context.Context) {
	for _, c := range a.cleanups {
		_ = c.Shutdown(ctx)
	}
}

func initEnv(runtimePath string) error {
	envPath := filepath.Join(runtimePath, ".env")
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(envPath)
}
