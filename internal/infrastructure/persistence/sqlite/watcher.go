package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/linekeys/internal/application/port"
	"github.com/bnema/linekeys/internal/logging"
)

const defaultWatchDebounce = 150 * time.Millisecond

// SiteWatcher reports writes to the site override database, including the
// ones made by other linekeys processes. A burst of writes is reported once.
type SiteWatcher struct {
	dbPath   string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	done     chan struct{}

	mu        sync.Mutex
	callbacks []func()
	timer     *time.Timer
	closed    bool
}

// NewSiteWatcher watches the directory of dbPath. A debounce of zero uses
// the default.
func NewSiteWatcher(ctx context.Context, dbPath string, debounce time.Duration) (*SiteWatcher, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}
	if debounce <= 0 {
		debounce = defaultWatchDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create database watcher: %w", err)
	}
	// SQLite replaces and truncates its side files, so watch the directory
	// rather than the files themselves.
	if err := fw.Add(filepath.Dir(dbPath)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to watch database directory: %w", err)
	}

	w := &SiteWatcher{
		dbPath:   filepath.Clean(dbPath),
		debounce: debounce,
		watcher:  fw,
		done:     make(chan struct{}),
	}
	go w.loop(ctx)
	return w, nil
}

// OnSettingsChange implements port.SettingsWatcher.
func (w *SiteWatcher) OnSettingsChange(fn func()) {
	if fn == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, fn)
}

// Close stops watching. Pending notifications are dropped.
func (w *SiteWatcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *SiteWatcher) loop(ctx context.Context) {
	defer close(w.done)
	log := logging.FromContext(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			log.Trace().Str("op", ev.Op.String()).Str("file", ev.Name).Msg("site database change detected")
			w.schedule()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("site database watcher error")
		}
	}
}

// relevant keeps writes to the database and its journal. The shared-memory
// index changes on plain reads and is ignored.
func (w *SiteWatcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
		!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return false
	}
	switch filepath.Clean(ev.Name) {
	case w.dbPath, w.dbPath + "-wal", w.dbPath + "-journal":
		return true
	}
	return false
}

func (w *SiteWatcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

func (w *SiteWatcher) fire() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	callbacks := make([]func(), len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

var _ port.SettingsWatcher = (*SiteWatcher)(nil)
