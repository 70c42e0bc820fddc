package memory

import (
	"context"
	"errors"
	"hash/fnv"
	"math"
	"strings"
	"testing"

	chromemgo "github.com/philippgille/chromem-go"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/mnemo/internal/core"
	chromemindex "github.com/sandevgo/mnemo/internal/index/chromem"
	"github.com/sandevgo/mnemo/internal/storage/sqlite"
)

// testEmbedding is a deterministic local embedding (normalized bag of
// hashed tokens) so the engine tests run against a real index without
// any embedding backend.
func testEmbedding(ctx context.Context, text string) ([]float32, error) {
	const dim = 64
	vec := make([]float32, dim)
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		h.Write([]byte(tok))
		vec[h.Sum32()%dim]++
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm == 0 {
		vec[0] = 1
		norm = 1
	}
	scale := float32(1 / math.Sqrt(norm))
	for i := range vec {
		vec[i] *= scale
	}
	return vec, nil
}

type fakeAI struct {
	reply string
	err   error
	calls int
}

func (f *fakeAI) Chat(ctx context.Context, history []core.Message) (core.Message, error) {
	f.calls++
	if f.err != nil {
		return core.Message{}, f.err
	}
	return core.Message{Role: core.RoleAssistant, Content: f.reply}, nil
}

var errIndexDown = errors.New("index unreachable")

// brokenIndex simulates an unavailable vector index.
type brokenIndex struct{}

func (brokenIndex) Upsert(ctx context.Context, id, text string, metadata map[string]string) error {
	return core.NewIndexError("upsert", errIndexDown)
}

func (brokenIndex) Query(ctx context.Context, text string, k int) ([]core.IndexHit, error) {
	return nil, core.NewIndexError("query", errIndexDown)
}

func (brokenIndex) Delete(ctx context.Context, ids []string) error {
	return core.NewIndexError("delete", errIndexDown)
}

func newTestRepo(t *testing.T) *sqlite.MemoryRepo {
	t.Helper()

	db, err := sqlite.NewDB(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlite.NewMemoryRepo(db)
}

func newTestIndex(t *testing.T) *chromemindex.Index {
	t.Helper()

	idx, err := chromemindex.New("", chromemgo.EmbeddingFunc(testEmbedding))
	require.NoError(t, err)
	return idx
}

func newTestEngine(t *testing.T, ai core.AIProvider) (*Engine, *sqlite.MemoryRepo) {
	t.Helper()

	repo := newTestRepo(t)
	return NewEngine(repo, newTestIndex(t), ai), repo
}
