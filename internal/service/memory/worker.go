package memory

import (
	"context"
	"time"

	"github.com/sandevgo/mnemo/pkg/log"
)

// Worker runs the maintenance sweep on a fixed schedule. It implements
// srv.Service and stops when the context is cancelled.
type Worker struct {
	engine   *Engine
	interval time.Duration
}

func NewWorker(engine *Engine, interval time.Duration) *Worker {
	return &Worker{
		engine:   engine,
		interval: interval,
	}
}

func (w *Worker) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx).With().Str("component", "maintenance_worker").Logger()
	logger.Info().Dur("interval", w.interval).Msg("starting maintenance worker")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("shutting down maintenance worker")
			return nil
		case <-ticker.C:
			if err := w.engine.RunMaintenance(ctx); err != nil {
				logger.Error().Err(err).Msg("maintenance sweep failed")
			}
		}
	}
}

func (w *Worker) Shutdown(ctx context.Context) error {
	return nil
}
