package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/linekeys/internal/application/port"
	"github.com/bnema/linekeys/internal/domain/entity"
	"github.com/bnema/linekeys/internal/logging"
)

// ExportSettingsOutput holds an export in the format ImportSettingsUseCase reads.
type ExportSettingsOutput struct {
	Data   []byte
	Global int
	Sites  int
}

type exportEntry struct {
	Key     *string `json:"key,omitempty"`
	Enabled *bool   `json:"enabled,omitempty"`
}

type exportDocument struct {
	Bindings map[string]exportEntry            `json:"bindings"`
	Sites    map[string]map[string]exportEntry `json:"sites,omitempty"`
}

// ExportSettingsUseCase serialises every stored override.
type ExportSettingsUseCase struct {
	store port.SettingsStore
}

// NewExportSettingsUseCase creates a new ExportSettingsUseCase.
func NewExportSettingsUseCase(store port.SettingsStore) *ExportSettingsUseCase {
	return &ExportSettingsUseCase{store: store}
}

// Execute returns the overrides as indented JSON.
func (uc *ExportSettingsUseCase) Execute(ctx context.Context) (*ExportSettingsOutput, error) {
	if uc == nil || uc.store == nil {
		return nil, fmt.Errorf("settings store is nil")
	}

	snapshot, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	doc := exportDocument{Bindings: exportOverrides(snapshot.Global)}
	if len(snapshot.Sites) > 0 {
		doc.Sites = make(map[string]map[string]exportEntry, len(snapshot.Sites))
		for pattern, overrides := range snapshot.Sites {
			if entries := exportOverrides(overrides); len(entries) > 0 {
				doc.Sites[pattern] = entries
			}
		}
	}

	// encoding/json sorts map keys, so exports are stable
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode settings: %w", err)
	}

	logging.FromContext(ctx).Debug().
		Int("global", len(doc.Bindings)).
		Int("sites", len(doc.Sites)).
		Msg("settings exported")

	return &ExportSettingsOutput{
		Data:   append(data, '\n'),
		Global: len(doc.Bindings),
		Sites:  len(doc.Sites),
	}, nil
}

func exportOverrides(overrides entity.Overrides) map[string]exportEntry {
	out := make(map[string]exportEntry, len(overrides))
	for action, o := range overrides {
		if o.IsEmpty() {
			continue
		}
		out[string(action)] = exportEntry{Key: o.Key, Enabled: o.Enabled}
	}
	return out
}
