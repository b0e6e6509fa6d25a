package tracker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/dsatrack/internal/catalog"
	"github.com/abhisek/dsatrack/internal/progress"
	"github.com/abhisek/dsatrack/internal/solved"
	"github.com/abhisek/dsatrack/internal/store"
	"github.com/abhisek/dsatrack/internal/streak"
)

const scenarioCatalog = `[
	{"id": 1, "questionName": "Two Sum", "topic": "Arrays", "subTopic": "Basics"},
	{"id": 2, "questionName": "Rotate Array", "topic": "Arrays", "subTopic": "Basics"},
	{"id": 3, "questionName": "Max Depth", "topic": "Trees", "subTopic": "DFS"}
]`

func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func clock(day string) func() time.Time {
	ts, err := time.Parse(time.RFC3339, day+"T12:00:00Z")
	if err != nil {
		panic(err)
	}
	return func() time.Time { return ts }
}

func openAt(t *testing.T, kv store.KV, source, day string) *Tracker {
	t.Helper()
	tr, err := Open(context.Background(), Options{Source: source, KV: kv, Now: clock(day)})
	require.NoError(t, err)
	return tr
}

func TestOpen_Scenario(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	require.NoError(t, kv.Set(ctx, solved.StorageKey, "[1]"))

	tr := openAt(t, kv, writeCatalog(t, scenarioCatalog), "2024-05-01")
	require.NoError(t, tr.LoadErr())
	assert.NotEmpty(t, tr.ID())

	assert.Equal(t, progress.Stats{Total: 3, Solved: 1, Percent: 33, Streak: 0}, tr.Stats(ctx))

	path := tr.Path()
	require.Len(t, path, 2)
	assert.Equal(t, "Arrays", path[0].Topic)
	assert.Equal(t, 50, path[0].Percent)
	assert.Equal(t, "Trees", path[1].Topic)

	next, ok := tr.SuggestedNext()
	require.True(t, ok)
	assert.Equal(t, "Arrays", next.Topic)

	assert.Equal(t, []string{"Arrays", "Trees"}, tr.Topics())
	assert.Equal(t, []string{"Basics"}, tr.SubTopics("Arrays"))
	assert.Len(t, tr.Map(), 2)

	q, ok := tr.Lookup(3)
	require.True(t, ok)
	assert.Equal(t, "Max Depth", q.Name)
	_, ok = tr.Lookup(42)
	assert.False(t, ok)
}

func TestOpen_VisitsOncePerOpen(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	src := writeCatalog(t, scenarioCatalog)

	openAt(t, kv, src, "2024-05-01")
	tr := openAt(t, kv, src, "2024-05-02")
	assert.Equal(t, 1, tr.Streak(ctx))

	// Reading the streak again must not count another visit.
	assert.Equal(t, 1, tr.Streak(ctx))
	assert.Equal(t, 1, tr.Stats(ctx).Streak)

	tr = openAt(t, kv, src, "2024-05-02")
	assert.Equal(t, 1, tr.Streak(ctx))

	last, ok := tr.LastVisit(ctx)
	require.True(t, ok)
	assert.Equal(t, "2024-05-02", last.String())
}

func TestOpen_LoadErrorKeepsSession(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	require.NoError(t, kv.Set(ctx, solved.StorageKey, "[1, 2]"))

	tr := openAt(t, kv, writeCatalog(t, `{"questions": []}`), "2024-05-01")

	require.ErrorIs(t, tr.LoadErr(), catalog.ErrLoad)
	assert.Empty(t, tr.Questions())
	assert.Equal(t, progress.Stats{}, tr.Stats(ctx))
	assert.Empty(t, tr.Path())
	_, ok := tr.SuggestedNext()
	assert.False(t, ok)

	// The visit is still recorded.
	_, ok = tr.LastVisit(ctx)
	assert.True(t, ok)
}

func TestOpen_RequiresKV(t *testing.T) {
	_, err := Open(context.Background(), Options{})
	assert.Error(t, err)
}

// readFailingKV holds data but fails every read.
type readFailingKV struct {
	*store.MemoryKV
}

var errRead = errors.New("disk I/O error")

func (readFailingKV) Get(context.Context, string) (string, bool, error) {
	return "", false, errRead
}

func TestOpen_ReadErrorLeavesStateAlone(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryKV()
	require.NoError(t, mem.Set(ctx, solved.StorageKey, "[1,2]"))
	require.NoError(t, mem.Set(ctx, streak.CountKey, "42"))
	require.NoError(t, mem.Set(ctx, streak.LastVisitKey, "2024-01-01"))

	_, err := Open(ctx, Options{
		Source: writeCatalog(t, scenarioCatalog),
		KV:     readFailingKV{mem},
		Now:    clock("2024-01-02"),
	})
	require.ErrorIs(t, err, errRead)

	for key, want := range map[string]string{
		solved.StorageKey:   "[1,2]",
		streak.CountKey:     "42",
		streak.LastVisitKey: "2024-01-01",
	} {
		got, _, _ := mem.Get(ctx, key)
		assert.Equal(t, want, got, key)
	}

	tr := openAt(t, mem, writeCatalog(t, scenarioCatalog), "2024-01-02")
	assert.Equal(t, 43, tr.Streak(ctx))
	assert.True(t, tr.IsSolved(2))
}

func TestOpen_Builtin(t *testing.T) {
	tr := openAt(t, store.NewMemoryKV(), "", "2024-05-01")
	require.NoError(t, tr.LoadErr())
	assert.Equal(t, catalog.BuiltinSource, tr.Source())
	assert.NotEmpty(t, tr.Questions())
}

func TestToggleAndBulkUnsolve(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	tr := openAt(t, kv, writeCatalog(t, scenarioCatalog), "2024-05-01")

	for _, id := range []int{1, 2, 3} {
		now, err := tr.Toggle(ctx, id)
		require.NoError(t, err)
		assert.True(t, now)
	}
	assert.Equal(t, 100, tr.Stats(ctx).Percent)
	_, ok := tr.SuggestedNext()
	assert.False(t, ok)

	n, err := tr.MarkVisibleUnsolved(ctx, progress.Criteria{Topic: "Arrays"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.False(t, tr.IsSolved(1))
	assert.True(t, tr.IsSolved(3))

	// Persisted state survives a new session.
	again := openAt(t, kv, writeCatalog(t, scenarioCatalog), "2024-05-01")
	assert.Equal(t, 1, again.Stats(ctx).Solved)

	_, err = tr.MarkVisibleUnsolved(ctx, progress.Criteria{Status: "bogus"})
	assert.ErrorIs(t, err, progress.ErrContractViolation)
}

func TestResetStreak(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	require.NoError(t, kv.Set(ctx, streak.CountKey, "7"))
	require.NoError(t, kv.Set(ctx, streak.LastVisitKey, "2024-01-01"))
	src := writeCatalog(t, scenarioCatalog)

	tr := openAt(t, kv, src, "2024-01-01")
	assert.Equal(t, 7, tr.Streak(ctx))

	require.NoError(t, tr.ResetStreak(ctx))
	assert.Equal(t, 0, tr.Streak(ctx))

	tr = openAt(t, kv, src, "2024-01-02")
	assert.Equal(t, 1, tr.Streak(ctx))
}

func TestResetAll(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	tr := openAt(t, kv, writeCatalog(t, scenarioCatalog), "2024-05-01")
	_, err := tr.Toggle(ctx, 2)
	require.NoError(t, err)

	require.NoError(t, tr.ResetAll(ctx))
	assert.Equal(t, 0, tr.Stats(ctx).Solved)
	_, ok := tr.LastVisit(ctx)
	assert.False(t, ok)
}
