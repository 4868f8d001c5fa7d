package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/linekeys/internal/domain/entity"
)

// setupXDG points every XDG directory at a fresh temp dir and returns the
// config file path.
func setupXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("LINEKEYS_LOG_LEVEL", "")
	t.Setenv("LINEKEYS_LOG_FORMAT", "")
	return filepath.Join(root, "config", appName, configName)
}

func mustAction(t *testing.T, id entity.ActionID) entity.ActionConfig {
	t.Helper()
	cfg, ok := entity.LookupAction(id)
	require.True(t, ok, "unknown action %s", id)
	return cfg
}

func writeConfigFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func loadManager(t *testing.T) *Manager {
	t.Helper()
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	return mgr
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.True(t, mgr.viper.GetBool("editor.enabled"))
	assert.Equal(t, 1500, mgr.viper.GetInt("editor.chord_timeout_ms"))
	assert.Equal(t, "console", mgr.viper.GetString("logging.format"))
}

func TestManager_LoadCreatesDefaultConfig(t *testing.T) {
	configFile := setupXDG(t)

	mgr := loadManager(t)

	assert.FileExists(t, configFile)
	cfg := mgr.Get()
	assert.True(t, cfg.Editor.Enabled)
	assert.Equal(t, 1500, cfg.Editor.ChordTimeoutMs)
	assert.Equal(t, filepath.Join(filepath.Dir(filepath.Dir(filepath.Dir(configFile))), "data", appName, databaseName), cfg.Database.Path)
}

func TestManager_LoadMigratesLegacyBindings(t *testing.T) {
	configFile := setupXDG(t)
	writeConfigFile(t, configFile, `
[editor]
chord_timeout_ms = 800

[bindings]
cut-line = false

[bindings.copy-line]
key = "ctrl+shift+c"
`)

	cfg := loadManager(t).Get()

	assert.Equal(t, 800, cfg.Editor.ChordTimeoutMs)

	cut := cfg.Bindings["cut-line"]
	require.NotNil(t, cut.Enabled)
	assert.False(t, *cut.Enabled)
	require.NotNil(t, cut.Key)
	assert.Equal(t, "Ctrl+X", *cut.Key)
	assert.False(t, cut.IsCustom)

	copyEntry := cfg.Bindings["copy-line"]
	require.NotNil(t, copyEntry.Key)
	assert.Equal(t, "Ctrl+Shift+C", *copyEntry.Key, "keys are stored canonically")
}

func TestManager_LoadRejectsInvalidConfig(t *testing.T) {
	configFile := setupXDG(t)
	writeConfigFile(t, configFile, `
[editor]
platform = "amiga"
`)

	mgr, err := NewManager()
	require.NoError(t, err)

	err = mgr.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "editor.platform")
}

func TestManager_EnvOverride(t *testing.T) {
	setupXDG(t)
	t.Setenv("LINEKEYS_LOG_LEVEL", "debug")
	t.Setenv("LINEKEYS_EDITOR_CHORD_TIMEOUT_MS", "900")

	cfg := loadManager(t).Get()

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 900, cfg.Editor.ChordTimeoutMs)
}

func TestManager_UpdateAndDeleteBinding(t *testing.T) {
	setupXDG(t)
	mgr := loadManager(t)

	cutLine := mustAction(t, entity.ActionCutLine)
	err := mgr.UpdateBinding(entity.ActionCutLine, func(e BindingEntry) BindingEntry {
		return e.apply(cutLine, entity.BindingOverride{Key: entity.StringPtr("ctrl+k ctrl+x")})
	})
	require.NoError(t, err)

	entry := mgr.Get().Bindings["cut-line"]
	require.NotNil(t, entry.Key)
	assert.Equal(t, "Ctrl+K Ctrl+X", *entry.Key)
	assert.True(t, entry.IsCustom)
	assert.True(t, entry.IsNowChord)

	// A fresh manager sees the saved file.
	reloaded := loadManager(t).Get()
	require.Contains(t, reloaded.Bindings, "cut-line")
	assert.Equal(t, "Ctrl+K Ctrl+X", *reloaded.Bindings["cut-line"].Key)
	assert.NotEmpty(t, reloaded.Database.Path)

	require.NoError(t, mgr.DeleteBinding(entity.ActionCutLine))
	assert.NotContains(t, mgr.Get().Bindings, "cut-line")
	assert.NotContains(t, loadManager(t).Get().Bindings, "cut-line")
}

func TestManager_UpdateBindingRejectsInvalidKey(t *testing.T) {
	setupXDG(t)
	mgr := loadManager(t)

	err := mgr.UpdateBinding(entity.ActionCutLine, func(e BindingEntry) BindingEntry {
		e.Key = entity.StringPtr("Ctrl+")
		return e
	})

	require.Error(t, err)
	assert.NotContains(t, mgr.Get().Bindings, "cut-line", "failed saves leave memory untouched")
}

func TestManager_SaveKeepsDefaultDatabasePathImplicit(t *testing.T) {
	configFile := setupXDG(t)
	mgr := loadManager(t)

	require.NoError(t, mgr.SetEnabled(false))

	content, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.NotContains(t, string(content), databaseName)
	assert.False(t, mgr.Get().Editor.Enabled)
}

func TestManager_GetReturnsCopy(t *testing.T) {
	setupXDG(t)
	mgr := loadManager(t)

	cfg := mgr.Get()
	cfg.Bindings["cut-line"] = BindingEntry{Enabled: entity.BoolPtr(false)}
	cfg.Editor.ChordTimeoutMs = 5

	assert.NotContains(t, mgr.Get().Bindings, "cut-line")
	assert.Equal(t, 1500, mgr.Get().Editor.ChordTimeoutMs)
}

func TestManager_OnSettingsChangeRegistersCallback(t *testing.T) {
	setupXDG(t)
	mgr := loadManager(t)

	called := 0
	mgr.OnSettingsChange(func() { called++ })
	mgr.OnSettingsChange(nil)

	mgr.mu.Lock()
	mgr.notifyCallbacksLocked()

	assert.Equal(t, 1, called)
}

func TestBindingEntry_Override(t *testing.T) {
	cutLine := mustAction(t, entity.ActionCutLine)

	tests := []struct {
		name    string
		entry   BindingEntry
		wantKey *string
	}{
		{
			name:  "legacy default key is dropped",
			entry: BindingEntry{Key: entity.StringPtr("Ctrl+X"), Enabled: entity.BoolPtr(false)},
		},
		{
			name:    "custom default key is kept",
			entry:   BindingEntry{Key: entity.StringPtr("ctrl+x"), IsCustom: true},
			wantKey: entity.StringPtr("Ctrl+X"),
		},
		{
			name:    "different key is kept",
			entry:   BindingEntry{Key: entity.StringPtr("Ctrl+Shift+X")},
			wantKey: entity.StringPtr("Ctrl+Shift+X"),
		},
		{name: "no key", entry: BindingEntry{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			override := tt.entry.Override(cutLine)

			assert.Equal(t, tt.wantKey, override.Key)
			assert.Equal(t, tt.entry.Enabled, override.Enabled)
		})
	}
}
