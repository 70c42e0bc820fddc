package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFeedback_UnknownID(t *testing.T) {
	engine, _ := newTestEngine(t, nil)

	assert.False(t, engine.ApplyFeedback(context.Background(), 42, 0.5, ""))
}

func TestApplyFeedback_UpdatesImportanceAndSummary(t *testing.T) {
	engine, repo := newTestEngine(t, nil)
	ctx := context.Background()

	entry, err := engine.Consolidate(ctx, "s1", "", "the original summary text", false)
	require.NoError(t, err)

	require.True(t, engine.ApplyFeedback(ctx, entry.ID, 0.9, "a corrected summary text"))

	stored, err := repo.Get(ctx, entry.ID)
	require.NoError(t, err)
	assert.InDelta(t, 0.9, stored.Importance, 1e-9)
	assert.Equal(t, "a corrected summary text", stored.Summary)

	// The index must mirror the post-update row.
	got := engine.Retrieve(ctx, "a corrected summary text", 1)
	require.Len(t, got, 1)
	assert.Equal(t, entry.ID, got[0].ID)
	assert.Equal(t, "a corrected summary text", got[0].Summary)
}

func TestApplyFeedback_BlankSummaryKeepsStored(t *testing.T) {
	engine, repo := newTestEngine(t, nil)
	ctx := context.Background()

	entry, err := engine.Consolidate(ctx, "s1", "", "summary to be kept", false)
	require.NoError(t, err)

	require.True(t, engine.ApplyFeedback(ctx, entry.ID, 0.3, "   "))

	stored, err := repo.Get(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "summary to be kept", stored.Summary)
	assert.InDelta(t, 0.3, stored.Importance, 1e-9)
}

func TestApplyFeedback_Idempotent(t *testing.T) {
	engine, repo := newTestEngine(t, nil)
	ctx := context.Background()

	entry, err := engine.Consolidate(ctx, "s1", "", "idempotence check summary", false)
	require.NoError(t, err)

	require.True(t, engine.ApplyFeedback(ctx, entry.ID, 0.7, "revised summary"))
	first, err := repo.Get(ctx, entry.ID)
	require.NoError(t, err)

	require.True(t, engine.ApplyFeedback(ctx, entry.ID, 0.7, "revised summary"))
	second, err := repo.Get(ctx, entry.ID)
	require.NoError(t, err)

	assert.Equal(t, first.Summary, second.Summary)
	assert.Equal(t, first.Importance, second.Importance)
}

func TestApplyFeedback_ClampsImportance(t *testing.T) {
	engine, repo := newTestEngine(t, nil)
	ctx := context.Background()

	entry, err := engine.Consolidate(ctx, "s1", "", "clamping check summary", false)
	require.NoError(t, err)

	require.True(t, engine.ApplyFeedback(ctx, entry.ID, 1.5, ""))
	stored, err := repo.Get(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, 1.0, stored.Importance)

	require.True(t, engine.ApplyFeedback(ctx, entry.ID, -0.2, ""))
	stored, err = repo.Get(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, stored.Importance)
}

func TestApplyFeedback_IndexFailureStillApplies(t *testing.T) {
	repo := newTestRepo(t)
	engine := NewEngine(repo, brokenIndex{}, nil)
	ctx := context.Background()

	// Row committed without a vector counterpart (index down).
	entry, err := engine.Consolidate(ctx, "s1", "", "entry living without its vector", false)
	require.Error(t, err)
	require.NotNil(t, entry)

	assert.True(t, engine.ApplyFeedback(ctx, entry.ID, 0.8, "still applied"))

	stored, err := repo.Get(ctx, entry.ID)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, stored.Importance, 1e-9)
	assert.Equal(t, "still applied", stored.Summary)
}
