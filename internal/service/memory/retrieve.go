package memory

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sandevgo/mnemo/internal/core"
	"github.com/sandevgo/mnemo/pkg/log"
)

// Retrieve returns up to topK memories semantically relevant to query,
// best match first. It never fails: a blank query, an unavailable index
// or index/store drift all degrade to fewer (or zero) results. Each
// resolved entry has its access stats bumped as a side effect; the
// returned entries reflect the bumped values.
func (e *Engine) Retrieve(ctx context.Context, query string, topK int) []core.MemoryEntry {
	logger := log.FromCtx(ctx)

	if strings.TrimSpace(query) == "" || topK <= 0 {
		return nil
	}

	hits, err := e.index.Query(ctx, query, topK)
	if err != nil {
		logger.Warn().Err(err).Msg("vector index unavailable, returning no memories")
		return nil
	}

	now := time.Now().UTC()
	entries := make([]core.MemoryEntry, 0, len(hits))
	for _, hit := range hits {
		id, err := recordID(hit)
		if err != nil {
			logger.Warn().Err(err).Str("hit_id", hit.ID).Msg("malformed index hit, skipping")
			continue
		}

		entry, err := e.repo.Get(ctx, id)
		if errors.Is(err, core.ErrNotFound) {
			// Index/store drift from a past partial failure.
			logger.Debug().Int64("id", id).Msg("index hit without backing row, skipping")
			continue
		}
		if err != nil {
			logger.Warn().Err(err).Int64("id", id).Msg("record lookup failed, skipping hit")
			continue
		}

		// Stale access stats are preferable to failing the read path.
		if err := e.repo.TouchAccess(ctx, id, now); err != nil {
			logger.Warn().Err(err).Int64("id", id).Msg("failed to update access stats")
		} else {
			entry.AccessCount++
			entry.LastAccessedAt = now
		}

		entries = append(entries, entry)
	}
	return entries
}

// recordID resolves the record store id carried by an index hit. The
// metadata is authoritative; the document id is its string form and
// serves as fallback.
func recordID(hit core.IndexHit) (int64, error) {
	raw := hit.Metadata["record_id"]
	if raw == "" {
		raw = hit.ID
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse record id %q: %w", raw, err)
	}
	return id, nil
}
