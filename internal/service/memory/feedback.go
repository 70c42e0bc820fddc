package memory

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/sandevgo/mnemo/internal/core"
	"github.com/sandevgo/mnemo/pkg/log"
)

// ApplyFeedback overwrites an entry's importance (clamped to [0,1]) and
// optionally its summary. The summary is replaced only when newSummary
// is non-blank and differs from the stored value. Returns false when
// the id does not resolve or the record store update fails.
//
// The record store is updated first; the index is re-synced only when
// something actually changed, with metadata mirroring the post-update
// row. An index failure leaves the feedback applied (tolerated
// asymmetry) and is only logged.
func (e *Engine) ApplyFeedback(ctx context.Context, id int64, importance float64, newSummary string) bool {
	logger := log.FromCtx(ctx).With().Int64("id", id).Logger()

	current, err := e.repo.Get(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		logger.Debug().Msg("feedback for unknown memory")
		return false
	}
	if err != nil {
		logger.Error().Err(err).Msg("feedback lookup failed")
		return false
	}

	summary := current.Summary
	if trimmed := strings.TrimSpace(newSummary); trimmed != "" && trimmed != current.Summary {
		summary = trimmed
	}
	clamped := core.ClampImportance(importance)

	if err := e.repo.UpdateFeedback(ctx, id, clamped, summary); err != nil {
		logger.Error().Err(err).Msg("feedback update failed")
		return false
	}

	if summary == current.Summary && clamped == current.Importance {
		// No-op feedback: skip the redundant index write.
		return true
	}

	updated := current
	updated.Summary = summary
	updated.Importance = clamped
	if updated.VectorID == "" {
		updated.VectorID = strconv.FormatInt(id, 10)
	}

	if err := e.index.Upsert(ctx, updated.VectorID, summary, indexMetadata(updated)); err != nil {
		logger.Warn().Err(err).Msg("vector index re-sync failed after feedback")
	}
	return true
}
