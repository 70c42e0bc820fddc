package core

import (
	"context"
	"time"
)

// MemoryRepository is the record store contract: durable structured
// storage of MemoryEntry rows. All operations are synchronous; failures
// other than ErrNotFound come back as *StoreError.
type MemoryRepository interface {
	// Insert stores a new entry with a NULL vector id and returns the
	// freshly assigned id.
	Insert(ctx context.Context, entry MemoryEntry) (int64, error)

	// SetVectorID stamps the vector id onto an existing row. The column
	// carries a UNIQUE constraint; a duplicate is a StoreError.
	SetVectorID(ctx context.Context, id int64, vectorID string) error

	Get(ctx context.Context, id int64) (MemoryEntry, error)

	// TouchAccess increments access_count and sets last_accessed_at in a
	// single statement.
	TouchAccess(ctx context.Context, id int64, at time.Time) error

	// UpdateFeedback overwrites importance and summary together,
	// serialized against concurrent feedback on the same row.
	UpdateFeedback(ctx context.Context, id int64, importance float64, summary string) error

	// DecayStale multiplies importance by factor for every row whose
	// last_accessed_at is older than olderThan and whose importance
	// exceeds floor. Returns the number of rows affected.
	DecayStale(ctx context.Context, olderThan time.Time, factor, floor float64) (int64, error)

	// ListPrunable returns id/vector-id pairs for rows whose importance
	// fell below threshold.
	ListPrunable(ctx context.Context, threshold float64) ([]PruneRef, error)

	DeleteByIDs(ctx context.Context, ids []int64) (int64, error)
}

// PruneRef identifies a row scheduled for deletion in both stores.
// VectorID is empty when the row never got its index counterpart.
type PruneRef struct {
	ID       int64
	VectorID string
}
