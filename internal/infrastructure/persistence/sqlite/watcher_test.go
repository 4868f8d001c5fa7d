package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/linekeys/internal/domain/entity"
)

func TestSiteWatcher_ReportsWritesFromAnotherConnection(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "linekeys.db")

	// the writer stands in for a second linekeys process
	writer, err := NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(writer) })

	w, err := NewSiteWatcher(ctx, dbPath, 20*time.Millisecond)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	var changes atomic.Int32
	w.OnSettingsChange(func() { changes.Add(1) })

	require.NoError(t, NewSiteOverrideRepository(writer).Upsert(ctx, &entity.SiteOverride{
		Pattern: "example.com",
		Action:  entity.ActionCutLine,
		Enabled: entity.BoolPtr(false),
	}))

	assert.Eventually(t, func() bool { return changes.Load() > 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestSiteWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()

	w, err := NewSiteWatcher(context.Background(), filepath.Join(dir, "linekeys.db"), 20*time.Millisecond)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	var changes atomic.Int32
	w.OnSettingsChange(func() { changes.Add(1) })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "linekeys.db-shm"), []byte("x"), 0o600))

	assert.Never(t, func() bool { return changes.Load() > 0 }, 200*time.Millisecond, 20*time.Millisecond)
}

func TestSiteWatcher_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "linekeys.db")

	w, err := NewSiteWatcher(context.Background(), dbPath, 100*time.Millisecond)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	var changes atomic.Int32
	w.OnSettingsChange(func() { changes.Add(1) })

	for range 5 {
		require.NoError(t, os.WriteFile(dbPath+"-wal", []byte("x"), 0o600))
	}

	assert.Eventually(t, func() bool { return changes.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), changes.Load())
}

func TestSiteWatcher_CloseIsIdempotent(t *testing.T) {
	w, err := NewSiteWatcher(context.Background(), filepath.Join(t.TempDir(), "linekeys.db"), 0)
	require.NoError(t, err)

	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestNewSiteWatcher_EmptyPath(t *testing.T) {
	_, err := NewSiteWatcher(context.Background(), "", 0)
	assert.EqualError(t, err, "database path cannot be empty")
}
