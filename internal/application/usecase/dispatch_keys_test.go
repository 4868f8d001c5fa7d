package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/linekeys/internal/application/port"
	"github.com/bnema/linekeys/internal/application/port/mocks"
	"github.com/bnema/linekeys/internal/domain/entity"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestDispatcher(t *testing.T, bindings BindingSource, notifier port.Notification, rec *recorder) (*ChordDispatcher, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	d := NewChordDispatcher(bindings, nil, notifier, rec.handle, DispatcherOptions{
		Platform: entity.PlatformOther,
		Now:      clock.Now,
	})
	t.Cleanup(d.Reset)
	return d, clock
}

func TestChordDispatcher_SimpleBinding(t *testing.T) {
	rec := &recorder{}
	d, _ := newTestDispatcher(t, defaultBindings(), nil, rec)
	buf := newFakeBuffer("hello", 0, 0)

	consumed := d.HandleKeyEvent(context.Background(), buf, keyEvent("Ctrl+D"))

	assert.True(t, consumed)
	require.Len(t, rec.actions, 1)
	assert.Equal(t, entity.ActionSelectNextOccurrence, rec.actions[0].action)
	assert.Equal(t, "surface-1", rec.actions[0].surfaceID)
}

func TestChordDispatcher_UnboundKeyPassesThrough(t *testing.T) {
	rec := &recorder{}
	d, _ := newTestDispatcher(t, defaultBindings(), nil, rec)
	buf := newFakeBuffer("hello", 0, 0)

	assert.False(t, d.HandleKeyEvent(context.Background(), buf, keyEvent("a")))
	assert.False(t, d.HandleKeyEvent(context.Background(), buf, keyEvent("Ctrl+Q")))
	assert.Empty(t, rec.actions)
}

func TestChordDispatcher_ChordCompletes(t *testing.T) {
	notifier := mocks.NewMockNotification(t)
	notifier.EXPECT().
		Show(mock.Anything, "surface-1", "(Ctrl+K) was pressed. Waiting for second key of chord...", port.NotificationInfo, DefaultFeedbackDurationMs).
		Return("").
		Once()

	rec := &recorder{}
	d, clock := newTestDispatcher(t, defaultBindings(), notifier, rec)
	buf := newFakeBuffer("hello", 0, 0)
	ctx := context.Background()

	assert.True(t, d.HandleKeyEvent(ctx, buf, keyEvent("Ctrl+K")))
	prefix, pending := d.PendingPrefix()
	assert.True(t, pending)
	assert.Equal(t, "Ctrl+K", prefix)
	assert.Empty(t, rec.actions)

	clock.Advance(200 * time.Millisecond)
	assert.True(t, d.HandleKeyEvent(ctx, buf, keyEvent("Ctrl+C")))

	require.Len(t, rec.actions, 1)
	assert.Equal(t, entity.ActionAddLineComment, rec.actions[0].action)
	_, pending = d.PendingPrefix()
	assert.False(t, pending)
}

func TestChordDispatcher_UnknownSecondKeyIsSwallowed(t *testing.T) {
	notifier := mocks.NewMockNotification(t)
	notifier.EXPECT().
		Show(mock.Anything, mock.Anything, mock.Anything, port.NotificationInfo, mock.Anything).
		Return("").
		Once()

	rec := &recorder{}
	d, _ := newTestDispatcher(t, defaultBindings(), notifier, rec)
	buf := newFakeBuffer("hello", 0, 0)
	ctx := context.Background()

	require.True(t, d.HandleKeyEvent(ctx, buf, keyEvent("Ctrl+K")))
	assert.True(t, d.HandleKeyEvent(ctx, buf, keyEvent("x")), "unmatched second key must be consumed")

	assert.Empty(t, rec.actions)
	_, pending := d.PendingPrefix()
	assert.False(t, pending)

	// back to idle: a plain key is no longer consumed
	assert.False(t, d.HandleKeyEvent(ctx, buf, keyEvent("x")))
}

func TestChordDispatcher_ExpiredPrefixIsIdle(t *testing.T) {
	rec := &recorder{}
	d, clock := newTestDispatcher(t, defaultBindings(), nil, rec)
	buf := newFakeBuffer("hello", 0, 0)
	ctx := context.Background()

	require.True(t, d.HandleKeyEvent(ctx, buf, keyEvent("Ctrl+K")))
	clock.Advance(DefaultChordTimeout + time.Millisecond)

	_, pending := d.PendingPrefix()
	assert.False(t, pending)

	// Ctrl+C after expiry is a fresh single-key event: copy-line.
	assert.True(t, d.HandleKeyEvent(ctx, buf, keyEvent("Ctrl+C")))
	require.Len(t, rec.actions, 1)
	assert.Equal(t, entity.ActionCopyLine, rec.actions[0].action)
}

func TestChordDispatcher_TimeoutNotifies(t *testing.T) {
	timedOut := make(chan struct{})
	notifier := mocks.NewMockNotification(t)
	notifier.EXPECT().
		Show(mock.Anything, "surface-1", mock.Anything, port.NotificationInfo, mock.Anything).
		Return("").
		Once()
	notifier.EXPECT().
		Show(mock.Anything, "surface-1", "Chord (Ctrl+K) timed out", port.NotificationWarning, mock.Anything).
		RunAndReturn(func(context.Context, string, string, port.NotificationType, int) port.NotificationID {
			close(timedOut)
			return ""
		}).
		Once()

	d := NewChordDispatcher(defaultBindings(), nil, notifier, (&recorder{}).handle, DispatcherOptions{
		Platform:     entity.PlatformOther,
		ChordTimeout: 10 * time.Millisecond,
	})

	require.True(t, d.HandleKeyEvent(context.Background(), newFakeBuffer("", 0, 0), keyEvent("Ctrl+K")))

	select {
	case <-timedOut:
	case <-time.After(2 * time.Second):
		t.Fatal("chord timeout was not reported")
	}
	_, pending := d.PendingPrefix()
	assert.False(t, pending)
}

func TestChordDispatcher_RearmIgnoresStaleTimer(t *testing.T) {
	notifier := mocks.NewMockNotification(t)
	notifier.EXPECT().
		Show(mock.Anything, mock.Anything, mock.Anything, port.NotificationInfo, mock.Anything).
		Return("").
		Times(2)

	rec := &recorder{}
	d := NewChordDispatcher(defaultBindings(), nil, notifier, rec.handle, DispatcherOptions{
		Platform:     entity.PlatformOther,
		ChordTimeout: time.Hour,
	})
	t.Cleanup(d.Reset)
	ctx := context.Background()
	buf := newFakeBuffer("", 0, 0)

	require.True(t, d.HandleKeyEvent(ctx, buf, keyEvent("Ctrl+K")))
	d.mu.Lock()
	staleSeq := d.pending.seq
	d.mu.Unlock()

	// the unmatched key resets, then a new prefix arms a fresh chord
	require.True(t, d.HandleKeyEvent(ctx, buf, keyEvent("q")))
	require.True(t, d.HandleKeyEvent(ctx, buf, keyEvent("Ctrl+K")))

	d.onTimeout(ctx, staleSeq)

	prefix, pending := d.PendingPrefix()
	assert.True(t, pending, "stale timer must not clear the new chord")
	assert.Equal(t, "Ctrl+K", prefix)
}

func TestChordDispatcher_FirstRegisteredBindingWins(t *testing.T) {
	table := entity.NewEffectiveBindingTable("", []entity.EffectiveBinding{
		{Action: entity.ActionCutLine, Key: "Ctrl+X", Enabled: true},
		{Action: entity.ActionDeleteLine, Key: "Ctrl+X", Enabled: true},
	})
	rec := &recorder{}
	d, _ := newTestDispatcher(t, staticBindings{table: table}, nil, rec)

	require.True(t, d.HandleKeyEvent(context.Background(), newFakeBuffer("", 0, 0), keyEvent("Ctrl+X")))
	require.Len(t, rec.actions, 1)
	assert.Equal(t, entity.ActionCutLine, rec.actions[0].action)
}

func TestChordDispatcher_PrefixShadowsSimpleBinding(t *testing.T) {
	table := entity.NewEffectiveBindingTable("", []entity.EffectiveBinding{
		{Action: entity.ActionCopyLine, Key: "Ctrl+K", Enabled: true},
		{Action: entity.ActionAddLineComment, Key: "Ctrl+K Ctrl+C", Enabled: true, IsChord: true},
	})
	rec := &recorder{}
	d, _ := newTestDispatcher(t, staticBindings{table: table}, nil, rec)

	require.True(t, d.HandleKeyEvent(context.Background(), newFakeBuffer("", 0, 0), keyEvent("Ctrl+K")))
	assert.Empty(t, rec.actions)
	_, pending := d.PendingPrefix()
	assert.True(t, pending)
}

func TestChordDispatcher_Guards(t *testing.T) {
	ctx := context.Background()
	buf := newFakeBuffer("", 0, 0)

	t.Run("modifier-only events are ignored", func(t *testing.T) {
		rec := &recorder{}
		d, _ := newTestDispatcher(t, defaultBindings(), nil, rec)
		assert.False(t, d.HandleKeyEvent(ctx, buf, entity.KeyEvent{Key: "Control", Ctrl: true}))
		assert.False(t, d.HandleKeyEvent(ctx, buf, entity.KeyEvent{Key: "Shift", Shift: true}))
		assert.Empty(t, rec.actions)
	})

	t.Run("non editable buffers are ignored", func(t *testing.T) {
		editable := mocks.NewMockEditabilityChecker(t)
		editable.EXPECT().IsEditable(buf).Return(false)

		rec := &recorder{}
		d := NewChordDispatcher(defaultBindings(), editable, nil, rec.handle, DispatcherOptions{Platform: entity.PlatformOther})
		assert.False(t, d.HandleKeyEvent(ctx, buf, keyEvent("Ctrl+D")))
		assert.Empty(t, rec.actions)
	})

	t.Run("disabled dispatcher ignores everything", func(t *testing.T) {
		rec := &recorder{}
		d, _ := newTestDispatcher(t, defaultBindings(), nil, rec)
		d.SetEnabled(false)
		assert.False(t, d.HandleKeyEvent(ctx, buf, keyEvent("Ctrl+D")))
		assert.Empty(t, rec.actions)
	})

	t.Run("disabling drops the pending chord", func(t *testing.T) {
		rec := &recorder{}
		d, _ := newTestDispatcher(t, defaultBindings(), nil, rec)
		require.True(t, d.HandleKeyEvent(ctx, buf, keyEvent("Ctrl+K")))
		d.SetEnabled(false)
		d.SetEnabled(true)
		_, pending := d.PendingPrefix()
		assert.False(t, pending)
	})
}

func TestChordDispatcher_MacUsesCmd(t *testing.T) {
	rec := &recorder{}
	d := NewChordDispatcher(defaultBindings(), nil, nil, rec.handle, DispatcherOptions{Platform: entity.PlatformMac})
	t.Cleanup(d.Reset)
	ctx := context.Background()
	buf := newFakeBuffer("", 0, 0)

	// Ctrl itself does not trigger on Mac.
	assert.False(t, d.HandleKeyEvent(ctx, buf, entity.KeyEvent{Key: "d", Ctrl: true}))

	assert.True(t, d.HandleKeyEvent(ctx, buf, entity.KeyEvent{Key: "k", Meta: true}))
	assert.True(t, d.HandleKeyEvent(ctx, buf, entity.KeyEvent{Key: "u", Meta: true}))

	require.Len(t, rec.actions, 1)
	assert.Equal(t, entity.ActionRemoveLineComment, rec.actions[0].action)
}
