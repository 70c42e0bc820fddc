// Package memory implements the long-term memory engines: consolidation
// of session transcripts into durable entries, semantic retrieval,
// user feedback, and the periodic decay/prune sweep. The record store is
// authoritative; the vector index mirrors it and may transiently lag
// (a row without an index entry is tolerated, the reverse is not).
package memory

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/sandevgo/mnemo/internal/core"
	"github.com/sandevgo/mnemo/pkg/retry"
)

const (
	// DefaultImportance is assigned to every freshly consolidated entry.
	DefaultImportance = 0.6

	// summaryTargetChars bounds LLM summaries and the truncation
	// fallback used when the summarizer is unavailable.
	summaryTargetChars = 200

	// transcriptTruncateChars bounds the summary when no summarizer is
	// requested at all.
	transcriptTruncateChars = 300

	// snippetChars bounds the transcript excerpt kept on the row.
	snippetChars = 1000

	maxKeywords     = 5
	minKeywordRunes = 3

	// Decay: entries untouched for decayAfter lose a tenth of their
	// importance per sweep, but never below decayFloor through decay
	// alone. Entries under pruneThreshold are removed from both stores.
	decayAfter     = 30 * 24 * time.Hour
	decayFactor    = 0.9
	decayFloor     = 0.05
	pruneThreshold = 0.01
)

// Engine wires the record store, the vector index and the optional
// summarization provider together. All dependencies are injected once
// at process start.
type Engine struct {
	repo    core.MemoryRepository
	index   core.VectorIndex
	ai      core.AIProvider // nil disables LLM summarization
	retrier *retry.Retrier
}

func NewEngine(repo core.MemoryRepository, index core.VectorIndex, ai core.AIProvider) *Engine {
	return &Engine{
		repo:  repo,
		index: index,
		ai:    ai,
		retrier: retry.NewRetrier(&retry.Config{
			MaxRetries:    1,
			BackoffFactor: 2,
			InitialDelay:  200 * time.Millisecond,
			MaxDelay:      time.Second,
			Jitter:        50 * time.Millisecond,
		}),
	}
}

// indexMetadata is what rides along with a summary in the vector index.
// It mirrors the row at the time of the upsert.
func indexMetadata(e core.MemoryEntry) map[string]string {
	m := map[string]string{
		"record_id":  strconv.FormatInt(e.ID, 10),
		"session_id": e.SessionID,
		"type":       "conversation_summary",
		"created_at": e.CreatedAt.UTC().Format(time.RFC3339),
		"importance": strconv.FormatFloat(e.Importance, 'f', -1, 64),
	}
	if len(e.Keywords) > 0 {
		if b, err := json.Marshal(e.Keywords); err == nil {
			m["keywords"] = string(b)
		}
	}
	return m
}

// truncate cuts s to at most max runes, marking the cut with an
// ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// clip cuts s to at most max runes without a marker.
func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
