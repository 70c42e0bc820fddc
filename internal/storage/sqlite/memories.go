package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/mnemo/internal/core"
)

// MemoryRepo is the sqlite-backed record store for consolidated
// memories. Timestamps are normalized to UTC before they hit the driver
// so that range predicates compare correctly.
type MemoryRepo struct {
	db *sql.DB
}

func NewMemoryRepo(db *sql.DB) *MemoryRepo {
	return &MemoryRepo{db: db}
}

func (r *MemoryRepo) Insert(ctx context.Context, entry core.MemoryEntry) (int64, error) {
	keywords, err := json.Marshal(entry.Keywords)
	if err != nil {
		return 0, core.NewStoreError("insert", fmt.Errorf("marshal keywords: %w", err))
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO memories (vector_id, session_id, summary, keywords, snippet, created_at, last_accessed_at, access_count, importance)
		 VALUES (NULL, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.SessionID, entry.Summary, string(keywords), entry.Snippet,
		entry.CreatedAt.UTC(), entry.LastAccessedAt.UTC(), entry.AccessCount, entry.Importance,
	)
	if err != nil {
		return 0, core.NewStoreError("insert", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, core.NewStoreError("insert", err)
	}
	return id, nil
}

func (r *MemoryRepo) SetVectorID(ctx context.Context, id int64, vectorID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE memories SET vector_id = ? WHERE id = ?`, vectorID, id)
	if err != nil {
		return core.NewStoreError("set vector id", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (r *MemoryRepo) Get(ctx context.Context, id int64) (core.MemoryEntry, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, vector_id, session_id, summary, keywords, snippet, created_at, last_accessed_at, access_count, importance
		 FROM memories WHERE id = ?`, id)
	return scanEntry(row)
}

func (r *MemoryRepo) TouchAccess(ctx context.Context, id int64, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE memories SET access_count = access_count + 1, last_accessed_at = ? WHERE id = ?`,
		at.UTC(), id)
	if err != nil {
		return core.NewStoreError("touch access", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (r *MemoryRepo) UpdateFeedback(ctx context.Context, id int64, importance float64, summary string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return core.NewStoreError("update feedback", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE memories SET importance = ?, summary = ? WHERE id = ?`,
		importance, summary, id)
	if err != nil {
		return core.NewStoreError("update feedback", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return core.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return core.NewStoreError("update feedback", err)
	}
	return nil
}

func (r *MemoryRepo) DecayStale(ctx context.Context, olderThan time.Time, factor, floor float64) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE memories SET importance = importance * ? WHERE last_accessed_at < ? AND importance > ?`,
		factor, olderThan.UTC(), floor)
	if err != nil {
		return 0, core.NewStoreError("decay", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, core.NewStoreError("decay", err)
	}
	return n, nil
}

func (r *MemoryRepo) ListPrunable(ctx context.Context, threshold float64) ([]core.PruneRef, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, vector_id FROM memories WHERE importance < ?`, threshold)
	if err != nil {
		return nil, core.NewStoreError("list prunable", err)
	}
	defer rows.Close()

	var refs []core.PruneRef
	for rows.Next() {
		var ref core.PruneRef
		var vectorID sql.NullString
		if err := rows.Scan(&ref.ID, &vectorID); err != nil {
			return nil, core.NewStoreError("list prunable", err)
		}
		ref.VectorID = vectorID.String
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, core.NewStoreError("list prunable", err)
	}
	return refs, nil
}

func (r *MemoryRepo) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	res, err := r.db.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM memories WHERE id IN (%s)`, placeholders), args...)
	if err != nil {
		return 0, core.NewStoreError("delete", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, core.NewStoreError("delete", err)
	}
	return n, nil
}

func scanEntry(row *sql.Row) (core.MemoryEntry, error) {
	var e core.MemoryEntry
	var vectorID sql.NullString
	var keywords string

	err := row.Scan(&e.ID, &vectorID, &e.SessionID, &e.Summary, &keywords,
		&e.Snippet, &e.CreatedAt, &e.LastAccessedAt, &e.AccessCount, &e.Importance)
	if errors.Is(err, sql.ErrNoRows) {
		return core.MemoryEntry{}, core.ErrNotFound
	}
	if err != nil {
		return core.MemoryEntry{}, core.NewStoreError("get", err)
	}

	e.VectorID = vectorID.String
	if keywords != "" {
		if err := json.Unmarshal([]byte(keywords), &e.Keywords); err != nil {
			return core.MemoryEntry{}, core.NewStoreError("get", fmt.Errorf("unmarshal keywords: %w", err))
		}
	}
	return e, nil
}
