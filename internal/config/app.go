package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/mnemo/pkg/log"
)

type AppConfig struct {
	RuntimePath string

	// Retrieval
	DefaultTopK int `env:"MNEMO_DEFAULT_TOP_K" envDefault:"3"`

	// Maintenance sweep schedule for the resident service.
	MaintenanceInterval time.Duration `env:"MNEMO_MAINTENANCE_INTERVAL" envDefault:"24h"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse app config")
	}
	c.RuntimePath = GetRuntimePath()
	return c
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "mnemo.db")
}

func (c AppConfig) GetIndexPath() string {
	return filepath.Join(c.RuntimePath, "index")
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.RuntimePath, ".env")
}
