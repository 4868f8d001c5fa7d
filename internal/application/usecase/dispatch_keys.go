package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/linekeys/internal/application/port"
	"github.com/bnema/linekeys/internal/domain/entity"
	"github.com/bnema/linekeys/internal/domain/service"
	"github.com/bnema/linekeys/internal/logging"
)

// DefaultChordTimeout is how long a chord prefix waits for its second key.
const DefaultChordTimeout = 1500 * time.Millisecond

// DefaultFeedbackDurationMs is how long feedback notifications stay visible.
const DefaultFeedbackDurationMs = 1500

// ActionHandler runs a resolved action against a buffer.
type ActionHandler func(ctx context.Context, buf port.TextBuffer, action entity.ActionID) error

// DispatcherOptions configures a ChordDispatcher.
type DispatcherOptions struct {
	Platform           entity.Platform
	ChordTimeout       time.Duration
	FeedbackDurationMs int
	// Now is used instead of time.Now when set.
	Now func() time.Time
}

type pendingChord struct {
	prefix    string
	surfaceID string
	startedAt time.Time
	deadline  time.Time
	seq       uint64
}

// ChordDispatcher turns key events into actions. It matches single-key
// bindings directly and tracks the first half of two-key chords until the
// second key arrives or the timeout expires.
type ChordDispatcher struct {
	bindings BindingSource
	editable port.EditabilityChecker
	notifier port.Notification
	handler  ActionHandler

	platform   entity.Platform
	timeout    time.Duration
	feedbackMs int
	now        func() time.Time

	mu      sync.Mutex
	enabled bool
	pending *pendingChord
	seq     uint64
	timer   *time.Timer
}

// NewChordDispatcher creates a dispatcher. editable and notifier may be nil.
func NewChordDispatcher(
	bindings BindingSource,
	editable port.EditabilityChecker,
	notifier port.Notification,
	handler ActionHandler,
	opts DispatcherOptions,
) *ChordDispatcher {
	d := &ChordDispatcher{
		bindings:   bindings,
		editable:   editable,
		notifier:   notifier,
		handler:    handler,
		platform:   opts.Platform.Resolve(),
		timeout:    opts.ChordTimeout,
		feedbackMs: opts.FeedbackDurationMs,
		now:        opts.Now,
		enabled:    true,
	}
	if d.timeout <= 0 {
		d.timeout = DefaultChordTimeout
	}
	if d.feedbackMs <= 0 {
		d.feedbackMs = DefaultFeedbackDurationMs
	}
	if d.now == nil {
		d.now = time.Now
	}
	return d
}

// SetEnabled turns dispatching on or off. Disabling drops any pending chord.
func (d *ChordDispatcher) SetEnabled(enabled bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.enabled = enabled
	if !enabled {
		d.clearPendingLocked()
	}
}

// Reset drops any pending chord.
func (d *ChordDispatcher) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clearPendingLocked()
}

// PendingPrefix returns the armed chord prefix, if any.
func (d *ChordDispatcher) PendingPrefix() (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending == nil || !d.now().Before(d.pending.deadline) {
		return "", false
	}
	return d.pending.prefix, true
}

// HandleKeyEvent processes one key event on buf.
// Returns true if the event was consumed and the host should suppress it.
func (d *ChordDispatcher) HandleKeyEvent(ctx context.Context, buf port.TextBuffer, ev entity.KeyEvent) bool {
	log := logging.FromContext(ctx)

	if buf == nil || ev.IsModifierOnly() {
		return false
	}
	if d.editable != nil && !d.editable.IsEditable(buf) {
		return false
	}

	table := d.bindings.Table()
	isMac := d.platform.IsMac()
	now := d.now()

	d.mu.Lock()
	if !d.enabled {
		d.mu.Unlock()
		return false
	}

	// The timer goroutine may not have run yet; an expired chord is idle.
	if d.pending != nil && !now.Before(d.pending.deadline) {
		log.Trace().Str("prefix", d.pending.prefix).Msg("chord expired before timer fired")
		d.clearPendingLocked()
	}

	if p := d.pending; p != nil {
		d.clearPendingLocked()
		d.mu.Unlock()

		action, ok := matchSecond(table, p.prefix, ev, isMac)
		if !ok {
			log.Debug().
				Str("prefix", p.prefix).
				Str("key", ev.Key).
				Msg("no chord completes prefix, swallowing key")
			return true
		}
		log.Debug().
			Str("prefix", p.prefix).
			Str("action", string(action)).
			Dur("elapsed", now.Sub(p.startedAt)).
			Msg("chord completed")
		d.fire(ctx, buf, action)
		return true
	}

	if prefix, ok := matchPrefix(table, ev, isMac); ok {
		d.armLocked(ctx, buf.SurfaceID(), prefix, now)
		d.mu.Unlock()

		log.Debug().Str("prefix", prefix).Dur("timeout", d.timeout).Msg("chord prefix armed")
		d.notify(ctx, buf.SurfaceID(),
			fmt.Sprintf("(%s) was pressed. Waiting for second key of chord...", entity.FormatKeyString(prefix, d.platform)),
			port.NotificationInfo)
		return true
	}
	d.mu.Unlock()

	if action, ok := matchSimple(table, ev, isMac); ok {
		log.Debug().Str("action", string(action)).Str("key", ev.Key).Msg("shortcut matched")
		d.fire(ctx, buf, action)
		return true
	}
	return false
}

func (d *ChordDispatcher) fire(ctx context.Context, buf port.TextBuffer, action entity.ActionID) {
	if d.handler == nil {
		logging.FromContext(ctx).Warn().Str("action", string(action)).Msg("no action handler configured")
		return
	}
	if err := d.handler(ctx, buf, action); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("action", string(action)).Msg("action failed")
	}
}

// armLocked records a pending chord and schedules its timeout.
// Must be called with d.mu held.
func (d *ChordDispatcher) armLocked(ctx context.Context, surfaceID, prefix string, now time.Time) {
	d.clearPendingLocked()
	d.seq++
	seq := d.seq
	d.pending = &pendingChord{
		prefix:    prefix,
		surfaceID: surfaceID,
		startedAt: now,
		deadline:  now.Add(d.timeout),
		seq:       seq,
	}
	d.timer = time.AfterFunc(d.timeout, func() {
		d.onTimeout(ctx, seq)
	})
}

func (d *ChordDispatcher) onTimeout(ctx context.Context, seq uint64) {
	d.mu.Lock()
	p := d.pending
	if p == nil || p.seq != seq {
		d.mu.Unlock()
		return
	}
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()

	logging.FromContext(ctx).Debug().Str("prefix", p.prefix).Msg("chord timed out")
	d.notify(ctx, p.surfaceID,
		fmt.Sprintf("Chord (%s) timed out", entity.FormatKeyString(p.prefix, d.platform)),
		port.NotificationWarning)
}

// clearPendingLocked must be called with d.mu held.
func (d *ChordDispatcher) clearPendingLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
}

func (d *ChordDispatcher) notify(ctx context.Context, surfaceID, msg string, kind port.NotificationType) {
	if d.notifier == nil {
		return
	}
	d.notifier.Show(ctx, surfaceID, msg, kind, d.feedbackMs)
}

func matchPrefix(table *entity.EffectiveBindingTable, ev entity.KeyEvent, isMac bool) (string, bool) {
	for _, c := range table.Chords() {
		if service.MatchesEvent(ev, c.Prefix, isMac) {
			return c.PrefixKey, true
		}
	}
	return "", false
}

func matchSecond(table *entity.EffectiveBindingTable, prefix string, ev entity.KeyEvent, isMac bool) (entity.ActionID, bool) {
	for _, c := range table.Chords() {
		if c.PrefixKey == prefix && service.MatchesEvent(ev, c.Second, isMac) {
			return c.Action, true
		}
	}
	return "", false
}

func matchSimple(table *entity.EffectiveBindingTable, ev entity.KeyEvent, isMac bool) (entity.ActionID, bool) {
	for _, b := range table.Simple() {
		if service.MatchesEvent(ev, b.Combo, isMac) {
			return b.Action, true
		}
	}
	return "", false
}
