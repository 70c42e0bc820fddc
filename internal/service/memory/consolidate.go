package memory

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/sandevgo/mnemo/internal/core"
	"github.com/sandevgo/mnemo/pkg/log"
)

// Consolidate turns a session transcript into a durable memory entry.
//
// Summary selection, in order: a non-blank userSummary verbatim; the
// summarizer (with truncation fallback) when useSummarizer is set and
// the transcript is non-blank; a plain truncation of the transcript;
// otherwise there is nothing to consolidate and (nil, nil) is returned.
//
// Commit sequencing: the row is inserted with a NULL vector id, the
// vector id is stamped, then the summary is upserted into the index.
// If the index upsert fails the committed entry is returned together
// with the error; the row is deliberately not rolled back, since it is
// the only durable evidence of the conversation.
func (e *Engine) Consolidate(ctx context.Context, sessionID, transcript, userSummary string, useSummarizer bool) (*core.MemoryEntry, error) {
	logger := log.FromCtx(ctx).With().Str("session_id", sessionID).Logger()

	var summary string
	switch {
	case strings.TrimSpace(userSummary) != "":
		summary = strings.TrimSpace(userSummary)
	case useSummarizer && strings.TrimSpace(transcript) != "":
		summary = e.summarize(ctx, transcript)
	case strings.TrimSpace(transcript) != "":
		summary = truncate(transcript, transcriptTruncateChars)
	default:
		logger.Debug().Msg("nothing to consolidate")
		return nil, nil
	}

	if summary == "" {
		logger.Debug().Msg("no summary could be produced")
		return nil, nil
	}

	now := time.Now().UTC()
	entry := core.MemoryEntry{
		SessionID:      sessionID,
		Summary:        summary,
		Keywords:       extractKeywords(summary),
		Snippet:        clip(transcript, snippetChars),
		CreatedAt:      now,
		LastAccessedAt: now,
		Importance:     DefaultImportance,
	}

	id, err := e.repo.Insert(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = id

	vectorID := strconv.FormatInt(id, 10)
	if err := e.repo.SetVectorID(ctx, id, vectorID); err != nil {
		return nil, err
	}
	entry.VectorID = vectorID

	if err := e.index.Upsert(ctx, vectorID, summary, indexMetadata(entry)); err != nil {
		// Tolerated asymmetry: the row stays, the index entry is missing.
		logger.Warn().Err(err).Int64("id", id).
			Msg("row committed without vector counterpart")
		return &entry, err
	}

	logger.Info().Int64("id", id).Str("vector_id", vectorID).Msg("memory consolidated")
	return &entry, nil
}
