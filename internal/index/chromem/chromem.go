// Package chromem adapts philippgille/chromem-go, an embedded pure-Go
// vector database, to the core.VectorIndex contract. The index is
// treated as an opaque nearest-neighbor service: documents are keyed by
// the record store id and similarity is cosine (higher is closer).
package chromem

import (
	"context"
	"fmt"

	chromem "github.com/philippgille/chromem-go"

	"github.com/sandevgo/mnemo/internal/core"
)

const collectionName = "memories"

type Index struct {
	col *chromem.Collection
}

// New opens the index. An empty path keeps everything in memory;
// otherwise the collection is persisted under path.
func New(path string, embed chromem.EmbeddingFunc) (*Index, error) {
	var db *chromem.DB
	var err error

	if path == "" {
		db = chromem.NewDB()
	} else {
		db, err = chromem.NewPersistentDB(path, false)
		if err != nil {
			return nil, fmt.Errorf("open persistent index: %w", err)
		}
	}

	col, err := db.GetOrCreateCollection(collectionName, nil, embed)
	if err != nil {
		return nil, fmt.Errorf("open collection: %w", err)
	}

	return &Index{col: col}, nil
}

// Upsert inserts or overwrites the document for id. chromem stores
// documents in a map keyed by id, so a repeated id is a last-write-wins
// replacement.
func (i *Index) Upsert(ctx context.Context, id, text string, metadata map[string]string) error {
	doc := chromem.Document{
		ID:       id,
		Content:  text,
		Metadata: metadata,
	}
	if err := i.col.AddDocument(ctx, doc); err != nil {
		return core.NewIndexError("upsert", err)
	}
	return nil
}

// Query returns up to k nearest documents, best match first. k is
// clamped to the collection size because chromem rejects nResults
// larger than the document count.
func (i *Index) Query(ctx context.Context, text string, k int) ([]core.IndexHit, error) {
	if n := i.col.Count(); k > n {
		k = n
	}
	if k <= 0 {
		return nil, nil
	}

	results, err := i.col.Query(ctx, text, k, nil, nil)
	if err != nil {
		return nil, core.NewIndexError("query", err)
	}

	hits := make([]core.IndexHit, 0, len(results))
	for _, res := range results {
		hits = append(hits, core.IndexHit{
			ID:         res.ID,
			Metadata:   res.Metadata,
			Similarity: res.Similarity,
		})
	}
	return hits, nil
}

// Delete removes the given ids; ids without a document are ignored.
func (i *Index) Delete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := i.col.Delete(ctx, nil, nil, ids...); err != nil {
		return core.NewIndexError("delete", err)
	}
	return nil
}
