package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetrieve_BlankQuery(t *testing.T) {
	engine, _ := newTestEngine(t, nil)

	assert.Empty(t, engine.Retrieve(context.Background(), "   ", 3))
	assert.Empty(t, engine.Retrieve(context.Background(), "real query", 0))
}

func TestRetrieve_EmptyIndex(t *testing.T) {
	engine, _ := newTestEngine(t, nil)

	got := engine.Retrieve(context.Background(), "unrelated query", 3)
	assert.Empty(t, got, "no relevant memory is a valid outcome, not an error")
}

func TestRetrieve_IndexUnavailable(t *testing.T) {
	engine := NewEngine(newTestRepo(t), brokenIndex{}, nil)

	got := engine.Retrieve(context.Background(), "anything", 3)
	assert.Empty(t, got)
}

func TestRetrieve_TouchesAccessStats(t *testing.T) {
	engine, repo := newTestEngine(t, nil)
	ctx := context.Background()

	entry, err := engine.Consolidate(ctx, "s1", "", "remembering the access counter semantics", false)
	require.NoError(t, err)
	require.NotNil(t, entry)

	got := engine.Retrieve(ctx, "remembering the access counter semantics", 1)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].AccessCount, "returned entry reflects the touch")

	got = engine.Retrieve(ctx, "remembering the access counter semantics", 1)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].AccessCount)

	stored, err := repo.Get(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stored.AccessCount)
	assert.True(t, stored.LastAccessedAt.After(entry.CreatedAt) || stored.LastAccessedAt.Equal(entry.CreatedAt))
}

func TestRetrieve_SkipsDriftedHits(t *testing.T) {
	engine, repo := newTestEngine(t, nil)
	ctx := context.Background()

	kept, err := engine.Consolidate(ctx, "s1", "", "the entry that stays around", false)
	require.NoError(t, err)
	drifted, err := engine.Consolidate(ctx, "s2", "", "the entry that loses its row", false)
	require.NoError(t, err)

	// Delete the row but leave the index entry behind: the same drift a
	// crashed maintenance sweep between the two deletes would produce.
	_, err = repo.DeleteByIDs(ctx, []int64{drifted.ID})
	require.NoError(t, err)

	got := engine.Retrieve(ctx, "the entry that loses its row", 2)
	require.Len(t, got, 1, "hit without a backing row is silently skipped")
	assert.Equal(t, kept.ID, got[0].ID)
}

func TestRetrieve_OrderedBestMatchFirst(t *testing.T) {
	engine, _ := newTestEngine(t, nil)
	ctx := context.Background()

	best, err := engine.Consolidate(ctx, "s1", "", "tuning sqlite busy timeout settings", false)
	require.NoError(t, err)
	_, err = engine.Consolidate(ctx, "s2", "", "weekend hiking plans in the mountains", false)
	require.NoError(t, err)

	got := engine.Retrieve(ctx, "tuning sqlite busy timeout settings", 2)
	require.Len(t, got, 2)
	assert.Equal(t, best.ID, got[0].ID)
}
