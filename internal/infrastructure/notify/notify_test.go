package notify

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/linekeys/internal/application/port"
)

func TestWriter_Show(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	first := w.Show(context.Background(), "s1", "Line copied", port.NotificationSuccess, 0)
	second := w.Show(context.Background(), "s1", "Clipboard write failed", port.NotificationError, 0)

	assert.NotEqual(t, first, second)
	assert.Contains(t, buf.String(), "Line copied")
	assert.Contains(t, buf.String(), "Clipboard write failed")
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestQueue_ReplacesPerSurfaceAndExpires(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	changes := 0
	q := NewQueue(func() { changes++ })
	q.now = func() time.Time { return now }
	ctx := context.Background()

	q.Show(ctx, "editor", "Line cut", port.NotificationSuccess, 1000)
	q.Show(ctx, "search", "No word at cursor", port.NotificationInfo, 3000)
	q.Show(ctx, "editor", "Line copied", port.NotificationSuccess, 1000)

	active := q.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "No word at cursor", active[0].Text)
	assert.Equal(t, "Line copied", active[1].Text)
	assert.Equal(t, 3, changes)

	now = now.Add(1500 * time.Millisecond)
	active = q.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "search", active[0].SurfaceID)

	now = now.Add(2 * time.Second)
	assert.Empty(t, q.Active())
}

func TestQueue_DismissAndClear(t *testing.T) {
	q := NewQueue(nil)
	ctx := context.Background()

	id := q.Show(ctx, "a", "one", port.NotificationInfo, 0)
	q.Show(ctx, "b", "two", port.NotificationWarning, 0)

	q.Dismiss(ctx, id)
	active := q.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "two", active[0].Text)

	q.Clear(ctx)
	assert.Empty(t, q.Active())
}
