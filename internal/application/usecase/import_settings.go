package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/tailscale/hujson"

	"github.com/bnema/linekeys/internal/application/port"
	"github.com/bnema/linekeys/internal/domain/entity"
	"github.com/bnema/linekeys/internal/domain/url"
	"github.com/bnema/linekeys/internal/logging"
)

// ImportSettingsInput carries a settings export. The document is JSON with
// optional comments and trailing commas:
//
//	{
//	  // global overrides
//	  "bindings": {"cut-line": {"key": "Ctrl+X"}, "copy-line": false},
//	  "sites": {"docs.google.com": {"cut-line": {"enabled": false}}}
//	}
//
// Boolean-only binding entries are the legacy format and are migrated on import.
type ImportSettingsInput struct {
	Data []byte
}

// ImportSettingsOutput summarises an import.
type ImportSettingsOutput struct {
	Global   int
	Sites    int
	Migrated int
	// Skipped lists entries that were ignored, as "scope/action: reason".
	Skipped []string
}

type settingsExport struct {
	Bindings map[string]any            `json:"bindings"`
	Sites    map[string]map[string]any `json:"sites"`
}

// ImportSettingsUseCase loads an exported settings document into the store.
type ImportSettingsUseCase struct {
	store       port.SettingsStore
	transformer port.ConfigTransformer
}

// NewImportSettingsUseCase creates a new ImportSettingsUseCase.
func NewImportSettingsUseCase(store port.SettingsStore, transformer port.ConfigTransformer) *ImportSettingsUseCase {
	return &ImportSettingsUseCase{store: store, transformer: transformer}
}

// Execute parses and stores the export. Invalid entries are skipped and
// reported; storage errors abort the import.
func (uc *ImportSettingsUseCase) Execute(ctx context.Context, input ImportSettingsInput) (*ImportSettingsOutput, error) {
	if uc == nil || uc.store == nil {
		return nil, fmt.Errorf("settings store is nil")
	}
	log := logging.FromContext(ctx)

	std, err := hujson.Standardize(input.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	var doc settingsExport
	if err := json.Unmarshal(std, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	out := &ImportSettingsOutput{}

	if uc.transformer != nil {
		out.Migrated += uc.transformer.TransformLegacyBindings(doc.Bindings)
	}
	for _, action := range sortedKeys(doc.Bindings) {
		override, reason := decodeOverride(entity.ActionID(action), doc.Bindings[action])
		if reason != "" {
			out.Skipped = append(out.Skipped, "global/"+action+": "+reason)
			continue
		}
		if err := uc.store.SaveGlobal(ctx, entity.ActionID(action), override); err != nil {
			return nil, fmt.Errorf("failed to save %s: %w", action, err)
		}
		out.Global++
	}

	for _, rawPattern := range sortedKeys(doc.Sites) {
		pattern, err := url.NormalizeSitePattern(rawPattern)
		if err != nil {
			out.Skipped = append(out.Skipped, rawPattern+": invalid site pattern")
			continue
		}
		entries := doc.Sites[rawPattern]
		if uc.transformer != nil {
			out.Migrated += uc.transformer.TransformLegacyBindings(entries)
		}
		saved := false
		for _, action := range sortedKeys(entries) {
			override, reason := decodeOverride(entity.ActionID(action), entries[action])
			if reason != "" {
				out.Skipped = append(out.Skipped, pattern+"/"+action+": "+reason)
				continue
			}
			if err := uc.store.SaveSite(ctx, pattern, entity.ActionID(action), override); err != nil {
				return nil, fmt.Errorf("failed to save %s for %s: %w", action, pattern, err)
			}
			saved = true
		}
		if saved {
			out.Sites++
		}
	}

	log.Info().
		Int("global", out.Global).
		Int("sites", out.Sites).
		Int("migrated", out.Migrated).
		Int("skipped", len(out.Skipped)).
		Msg("settings imported")

	return out, nil
}

// decodeOverride turns one binding entry into an override. The key is kept
// only when it differs from the default, so untouched entries keep following
// future default changes.
func decodeOverride(action entity.ActionID, raw any) (entity.BindingOverride, string) {
	cfg, ok := entity.LookupAction(action)
	if !ok {
		return entity.BindingOverride{}, "unknown action"
	}

	var override entity.BindingOverride
	switch v := raw.(type) {
	case bool:
		override.Enabled = entity.BoolPtr(v)
	case map[string]any:
		if enabled, ok := v["enabled"].(bool); ok {
			override.Enabled = entity.BoolPtr(enabled)
		}
		if key, ok := v["key"].(string); ok {
			normalized, err := normalizeKeyString(key)
			if err != nil {
				return entity.BindingOverride{}, "invalid key " + fmt.Sprintf("%q", key)
			}
			if def, _ := normalizeKeyString(cfg.DefaultKey); normalized != def {
				override.Key = entity.StringPtr(normalized)
			}
		}
	default:
		return entity.BindingOverride{}, "unsupported entry"
	}

	if override.IsEmpty() {
		return entity.BindingOverride{}, "nothing to import"
	}
	return override, ""
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
