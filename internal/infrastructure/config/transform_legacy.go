package config

import (
	"github.com/bnema/linekeys/internal/application/port"
	"github.com/bnema/linekeys/internal/domain/entity"
)

// LegacyBindingTransformer implements port.ConfigTransformer.
// It rewrites the boolean-only binding format into full entries.
type LegacyBindingTransformer struct {
	catalog []entity.ActionConfig
}

// NewLegacyBindingTransformer creates a transformer backed by the default
// action catalog.
func NewLegacyBindingTransformer() *LegacyBindingTransformer {
	return &LegacyBindingTransformer{catalog: entity.DefaultActions()}
}

// TransformLegacyBindings converts entries of the form:
//
//	[bindings]
//	cut-line = false
//
// To:
//
//	[bindings.cut-line]
//	enabled = false
//	key = "Ctrl+X"
//	is_custom = false
//	is_now_chord = false
//
// Entries of unknown actions are left for validation to report.
func (t *LegacyBindingTransformer) TransformLegacyBindings(rawBindings map[string]any) int {
	changed := 0
	for action, raw := range rawBindings {
		enabled, ok := raw.(bool)
		if !ok {
			continue
		}
		cfg, ok := t.lookup(entity.ActionID(action))
		if !ok {
			continue
		}
		rawBindings[action] = map[string]any{
			"enabled":      enabled,
			"key":          cfg.DefaultKey,
			"is_custom":    false,
			"is_now_chord": cfg.IsChord(),
		}
		changed++
	}
	return changed
}

func (t *LegacyBindingTransformer) lookup(id entity.ActionID) (entity.ActionConfig, bool) {
	for _, cfg := range t.catalog {
		if cfg.ID == id {
			return cfg, true
		}
	}
	return entity.ActionConfig{}, false
}

// countLegacyBindings reports how many entries TransformLegacyBindings would
// rewrite, without touching the map.
func countLegacyBindings(rawBindings map[string]any) int {
	count := 0
	for action, raw := range rawBindings {
		if _, ok := raw.(bool); !ok {
			continue
		}
		if _, ok := entity.LookupAction(entity.ActionID(action)); ok {
			count++
		}
	}
	return count
}

var _ port.ConfigTransformer = (*LegacyBindingTransformer)(nil)
