package config

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/linekeys/internal/application/port"
	"github.com/bnema/linekeys/internal/domain/entity"
	"github.com/bnema/linekeys/internal/domain/repository"
	"github.com/bnema/linekeys/internal/logging"
)

// SettingsGateway implements port.SettingsStore. Global overrides live in
// config.toml; site rules live in the site override repository.
type SettingsGateway struct {
	manager *Manager
	sites   repository.SiteOverrideRepository
}

// NewSettingsGateway creates a gateway. sites may be nil, in which case site
// rules are empty and cannot be saved.
func NewSettingsGateway(manager *Manager, sites repository.SiteOverrideRepository) *SettingsGateway {
	return &SettingsGateway{manager: manager, sites: sites}
}

// Load returns the on/off switch, global overrides and site rules.
func (g *SettingsGateway) Load(ctx context.Context) (port.SettingsSnapshot, error) {
	if g == nil || g.manager == nil {
		return port.SettingsSnapshot{}, fmt.Errorf("config manager is nil")
	}

	cfg := g.manager.Get()
	snapshot := port.SettingsSnapshot{
		Enabled: cfg.Editor.Enabled,
		Global:  make(entity.Overrides, len(cfg.Bindings)),
	}
	for action, entry := range cfg.Bindings {
		actionCfg, ok := entity.LookupAction(entity.ActionID(action))
		if !ok {
			logging.FromContext(ctx).Debug().Str("action", action).Msg("ignoring binding for unknown action")
			continue
		}
		if override := entry.Override(actionCfg); !override.IsEmpty() {
			snapshot.Global[actionCfg.ID] = override
		}
	}

	if g.sites == nil {
		return snapshot, nil
	}
	rows, err := g.sites.List(ctx)
	if err != nil {
		return port.SettingsSnapshot{}, fmt.Errorf("failed to list site overrides: %w", err)
	}
	snapshot.Sites = entity.GroupSiteOverrides(rows)
	return snapshot, nil
}

// SaveGlobal merges override into the config entry of action.
func (g *SettingsGateway) SaveGlobal(_ context.Context, action entity.ActionID, override entity.BindingOverride) error {
	if g == nil || g.manager == nil {
		return fmt.Errorf("config manager is nil")
	}
	actionCfg, ok := entity.LookupAction(action)
	if !ok {
		return fmt.Errorf("%w: %s", entity.ErrUnknownAction, action)
	}
	return g.manager.UpdateBinding(action, func(entry BindingEntry) BindingEntry {
		return entry.apply(actionCfg, override)
	})
}

// ResetGlobal removes the config entry of action.
func (g *SettingsGateway) ResetGlobal(_ context.Context, action entity.ActionID) error {
	if g == nil || g.manager == nil {
		return fmt.Errorf("config manager is nil")
	}
	return g.manager.DeleteBinding(action)
}

// SaveSite merges override into the stored row for pattern and action.
func (g *SettingsGateway) SaveSite(ctx context.Context, pattern string, action entity.ActionID, override entity.BindingOverride) error {
	if g == nil || g.sites == nil {
		return fmt.Errorf("site override repository is nil")
	}
	if action == "" {
		return fmt.Errorf("action is required")
	}

	existing, err := g.sites.Get(ctx, pattern, action)
	if err != nil {
		return fmt.Errorf("failed to get site override: %w", err)
	}
	merged := override
	if existing != nil {
		merged = existing.Override().Merge(override)
	}
	if merged.Key != nil {
		merged.Key = entity.StringPtr(canonicalKey(*merged.Key))
	}

	row := &entity.SiteOverride{
		Pattern:   pattern,
		Action:    action,
		Key:       merged.Key,
		Enabled:   merged.Enabled,
		UpdatedAt: time.Now(),
	}
	if err := g.sites.Upsert(ctx, row); err != nil {
		return fmt.Errorf("failed to save site override: %w", err)
	}
	return nil
}

// DeleteSite removes the row of action, or the whole rule when action is empty.
func (g *SettingsGateway) DeleteSite(ctx context.Context, pattern string, action entity.ActionID) error {
	if g == nil || g.sites == nil {
		return fmt.Errorf("site override repository is nil")
	}
	if action == "" {
		return g.sites.DeletePattern(ctx, pattern)
	}
	return g.sites.Delete(ctx, pattern, action)
}

var _ port.SettingsStore = (*SettingsGateway)(nil)
