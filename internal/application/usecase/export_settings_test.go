package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/linekeys/internal/application/port"
	"github.com/bnema/linekeys/internal/application/port/mocks"
	"github.com/bnema/linekeys/internal/domain/entity"
)

func TestExportSettingsUseCase_Execute(t *testing.T) {
	store := mocks.NewMockSettingsStore(t)
	store.EXPECT().Load(mock.Anything).Return(port.SettingsSnapshot{
		Enabled: true,
		Global: entity.Overrides{
			entity.ActionCutLine:  {Key: entity.StringPtr("Ctrl+Shift+X")},
			entity.ActionCopyLine: {Enabled: entity.BoolPtr(false)},
		},
		Sites: map[string]entity.Overrides{
			"docs.google.com": {entity.ActionCutLine: {Enabled: entity.BoolPtr(false)}},
			"empty.example":   {},
		},
	}, nil)

	out, err := NewExportSettingsUseCase(store).Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, out.Global)
	assert.Equal(t, 1, out.Sites)
	assert.JSONEq(t, `{
		"bindings": {
			"copy-line": {"enabled": false},
			"cut-line": {"key": "Ctrl+Shift+X"}
		},
		"sites": {
			"docs.google.com": {"cut-line": {"enabled": false}}
		}
	}`, string(out.Data))
}

func TestExportSettingsUseCase_RoundTrip(t *testing.T) {
	src := mocks.NewMockSettingsStore(t)
	src.EXPECT().Load(mock.Anything).Return(port.SettingsSnapshot{
		Global: entity.Overrides{entity.ActionDeleteLine: {Key: entity.StringPtr("Ctrl+Shift+D")}},
	}, nil)

	out, err := NewExportSettingsUseCase(src).Execute(context.Background())
	require.NoError(t, err)

	dst := mocks.NewMockSettingsStore(t)
	dst.EXPECT().
		SaveGlobal(mock.Anything, entity.ActionDeleteLine, entity.BindingOverride{Key: entity.StringPtr("Ctrl+Shift+D")}).
		Return(nil)

	imported, err := NewImportSettingsUseCase(dst, nil).Execute(context.Background(), ImportSettingsInput{Data: out.Data})
	require.NoError(t, err)
	assert.Equal(t, 1, imported.Global)
	assert.Empty(t, imported.Skipped)
}

func TestExportSettingsUseCase_LoadError(t *testing.T) {
	store := mocks.NewMockSettingsStore(t)
	store.EXPECT().Load(mock.Anything).Return(port.SettingsSnapshot{}, errors.New("locked"))

	_, err := NewExportSettingsUseCase(store).Execute(context.Background())

	assert.ErrorContains(t, err, "locked")
}
