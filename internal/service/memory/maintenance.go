package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/sandevgo/mnemo/pkg/log"
)

// RunMaintenance performs one decay-and-prune sweep. Idempotent and
// safe to invoke concurrently with itself: both steps are single
// statements against the serialized record store.
//
// Rows are deleted before their vector entries; losing a vector entry
// while keeping its row is the tolerated failure mode, the reverse is
// not.
func (e *Engine) RunMaintenance(ctx context.Context) error {
	logger := log.FromCtx(ctx)

	cutoff := time.Now().UTC().Add(-decayAfter)
	decayed, err := e.repo.DecayStale(ctx, cutoff, decayFactor, decayFloor)
	if err != nil {
		return fmt.Errorf("decay sweep: %w", err)
	}

	refs, err := e.repo.ListPrunable(ctx, pruneThreshold)
	if err != nil {
		return fmt.Errorf("select prunable: %w", err)
	}

	if len(refs) == 0 {
		logger.Debug().Int64("decayed", decayed).Msg("maintenance complete, nothing to prune")
		return nil
	}

	ids := make([]int64, 0, len(refs))
	vectorIDs := make([]string, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.ID)
		if ref.VectorID != "" {
			vectorIDs = append(vectorIDs, ref.VectorID)
		}
	}

	pruned, err := e.repo.DeleteByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("prune rows: %w", err)
	}

	if err := e.index.Delete(ctx, vectorIDs); err != nil {
		logger.Warn().Err(err).
			Int("vector_ids", len(vectorIDs)).
			Msg("failed to prune vector entries, rows already deleted")
	}

	logger.Info().
		Int64("decayed", decayed).
		Int64("pruned", pruned).
		Msg("maintenance complete")
	return nil
}
