// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/bnema/linekeys/internal/application/port"
	"github.com/bnema/linekeys/internal/domain/entity"
	"github.com/bnema/linekeys/internal/domain/service"
	"github.com/bnema/linekeys/internal/logging"
)

// BindingSource exposes the binding table currently in effect.
type BindingSource interface {
	Table() *entity.EffectiveBindingTable
}

// ResolveBindingsUseCase keeps the effective binding table for the current
// hostname up to date. Readers get an immutable snapshot; refreshes swap it
// atomically.
type ResolveBindingsUseCase struct {
	store   port.SettingsStore
	catalog []entity.ActionConfig

	table   atomic.Pointer[entity.EffectiveBindingTable]
	enabled atomic.Bool
	group   singleflight.Group

	// loads numbers every settings load; a table is published only if no
	// later load has been published already.
	loads     atomic.Uint64
	mu        sync.Mutex
	published uint64
}

// NewResolveBindingsUseCase creates a resolver seeded with catalog defaults.
func NewResolveBindingsUseCase(store port.SettingsStore) *ResolveBindingsUseCase {
	uc := &ResolveBindingsUseCase{
		store:   store,
		catalog: entity.DefaultActions(),
	}
	uc.table.Store(service.ResolveBindings(uc.catalog, nil, nil, ""))
	uc.enabled.Store(true)
	return uc
}

// Refresh reloads settings and resolves bindings for hostname.
// Concurrent refreshes for the same hostname share one load.
func (uc *ResolveBindingsUseCase) Refresh(ctx context.Context, hostname string) (*entity.EffectiveBindingTable, error) {
	if uc == nil || uc.store == nil {
		return nil, fmt.Errorf("settings store is nil")
	}
	log := logging.FromContext(ctx)

	v, err, shared := uc.group.Do(hostname, func() (any, error) {
		seq := uc.loads.Add(1)
		snapshot, err := uc.store.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}

		table := service.ResolveBindings(uc.catalog, snapshot.Global, snapshot.Sites, hostname)
		if !uc.publish(seq, table, snapshot.Enabled) {
			log.Debug().Uint64("load", seq).Msg("discarding bindings from a superseded load")
			return uc.Table(), nil
		}

		log.Debug().
			Str("host", table.Hostname).
			Int("simple", len(table.Simple())).
			Int("chords", len(table.Chords())).
			Int("sites", len(snapshot.Sites)).
			Bool("enabled", snapshot.Enabled).
			Msg("bindings resolved")
		return table, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		log.Trace().Str("host", hostname).Msg("binding refresh coalesced")
	}
	return v.(*entity.EffectiveBindingTable), nil
}

func (uc *ResolveBindingsUseCase) publish(seq uint64, table *entity.EffectiveBindingTable, enabled bool) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if seq < uc.published {
		return false
	}
	uc.published = seq
	uc.table.Store(table)
	uc.enabled.Store(enabled)
	return true
}

// Table returns the current binding table.
func (uc *ResolveBindingsUseCase) Table() *entity.EffectiveBindingTable {
	return uc.table.Load()
}

// Enabled reports the global on/off switch from the last refresh.
func (uc *ResolveBindingsUseCase) Enabled() bool {
	return uc.enabled.Load()
}

// Hostname returns the hostname of the current table.
func (uc *ResolveBindingsUseCase) Hostname() string {
	return uc.Table().Hostname
}

// Watch re-resolves the current hostname whenever settings change.
// onRefresh, if set, receives each new table. A change never joins a load
// that was already running, since that load may predate it.
func (uc *ResolveBindingsUseCase) Watch(
	ctx context.Context,
	watcher port.SettingsWatcher,
	onRefresh func(*entity.EffectiveBindingTable),
) {
	if watcher == nil {
		return
	}
	watcher.OnSettingsChange(func() {
		hostname := uc.Hostname()
		uc.group.Forget(hostname)
		table, err := uc.Refresh(ctx, hostname)
		if err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("failed to refresh bindings after settings change")
			return
		}
		if onRefresh != nil {
			onRefresh(table)
		}
	})
}
