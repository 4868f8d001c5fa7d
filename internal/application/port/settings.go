package port

import (
	"context"

	"github.com/bnema/linekeys/internal/domain/entity"
)

// SettingsSnapshot holds every persisted override.
// Sites is keyed by exact hostname or "*.suffix" pattern.
type SettingsSnapshot struct {
	Enabled bool
	Global  entity.Overrides
	Sites   map[string]entity.Overrides
}

// SettingsStore loads and persists binding overrides.
type SettingsStore interface {
	Load(ctx context.Context) (SettingsSnapshot, error)

	// SaveGlobal merges override into the global entry of action.
	SaveGlobal(ctx context.Context, action entity.ActionID, override entity.BindingOverride) error

	// ResetGlobal drops the global entry of action so it inherits the default.
	ResetGlobal(ctx context.Context, action entity.ActionID) error

	// SaveSite merges override into the site rule for pattern.
	SaveSite(ctx context.Context, pattern string, action entity.ActionID, override entity.BindingOverride) error

	// DeleteSite drops the site entry of action; an empty action drops the whole rule.
	DeleteSite(ctx context.Context, pattern string, action entity.ActionID) error
}

// SettingsWatcher reports changes made to settings outside this process.
type SettingsWatcher interface {
	OnSettingsChange(fn func())
}
