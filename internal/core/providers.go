package core

import "context"

// AIProvider is the pluggable chat capability behind summarization.
type AIProvider interface {
	Chat(ctx context.Context, history []Message) (Message, error)
}

// VectorIndex is the opaque semantic index. Upsert with the same id is
// idempotent replacement (last write wins); ranking is deterministic for
// a fixed index state and query.
type VectorIndex interface {
	// Upsert inserts or overwrites the entry for id.
	Upsert(ctx context.Context, id, text string, metadata map[string]string) error

	// Query returns up to k nearest entries, best match first.
	// Similarity is cosine: higher is closer.
	Query(ctx context.Context, text string, k int) ([]IndexHit, error)

	// Delete removes entries; missing ids are ignored.
	Delete(ctx context.Context, ids []string) error
}

// IndexHit is one nearest-neighbor result from the vector index.
type IndexHit struct {
	ID         string
	Metadata   map[string]string
	Similarity float32
}
