package styles_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/linekeys/internal/application/port"
	"github.com/bnema/linekeys/internal/cli/styles"
	"github.com/bnema/linekeys/internal/domain/entity"
)

func TestConfigRenderer_RenderConfigInfo(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderConfigInfo("/tmp/linekeys/config.toml", 3, 2)
	require.Contains(t, out, "config.toml")
	assert.Contains(t, out, "3 new settings available")
	assert.Contains(t, out, "2 bindings use the old on/off format")

	out = r.RenderConfigInfo("/tmp/linekeys/config.toml", 0, 0)
	assert.NotContains(t, out, "new settings")
	assert.NotContains(t, out, "old on/off")
}

func TestConfigRenderer_RenderMissingKeys(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	assert.Empty(t, r.RenderMissingKeys(nil))

	out := r.RenderMissingKeys([]port.KeyInfo{{Key: "editor.chord_timeout_ms", Type: "int", DefaultValue: "1500"}})
	assert.Contains(t, out, "Missing settings (1)")
	assert.Contains(t, out, "editor.chord_timeout_ms")
	assert.Contains(t, out, "1500")
}

func TestConfigRenderer_Messages(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	assert.Contains(t, r.RenderMigrationSuccess(4, "/home/me/.config/linekeys/config.toml"), "Updated 4 settings in config.toml")
	assert.Contains(t, r.RenderUpToDate("/x/config.toml"), "Config is up to date")
	assert.Contains(t, r.RenderError(errors.New("boom")), "boom")
	assert.Contains(t, r.RenderMigrateHint(), "linekeys config migrate")
	assert.Contains(t, r.RenderSchemaWritten("/x/config.schema.json"), "config.schema.json")
	assert.Contains(t, r.RenderMasterSwitch(true), "Editing shortcuts are on")
	assert.Contains(t, r.RenderMasterSwitch(false), "Editing shortcuts are off")
}

func TestConfigRenderer_RenderPaths(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderPaths([]styles.PathEntry{
		{Label: "Config", Path: "/c/config.toml"},
		{Label: "Database", Path: "/d/linekeys.sqlite"},
	})

	assert.Contains(t, out, "Config    /c/config.toml")
	assert.Contains(t, out, "Database  /d/linekeys.sqlite")
}

func TestConfigSchemaRenderer_GroupsBySection(t *testing.T) {
	r := styles.NewConfigSchemaRenderer(styles.NewTheme())

	out := r.Render([]entity.ConfigKeyInfo{
		{Key: "bindings.cut-line.key", Type: "string", Default: "Ctrl+X", Section: "Bindings"},
		{Key: "editor.platform", Type: "string", Default: "auto", Values: []string{"auto", "mac", "other"}, Section: "Editor"},
		{Key: "editor.chord_timeout_ms", Type: "int", Default: "1500", Range: "100-10000", Section: "Editor"},
	})

	assert.Contains(t, out, "Values: auto, mac, other")
	assert.Contains(t, out, "Range: 100-10000")
	assert.Less(t, indexOf(out, "editor.platform"), indexOf(out, "cut-line"), "Editor comes before Bindings")
}

func TestConfigSchemaRenderer_FoldsBindingsPerAction(t *testing.T) {
	r := styles.NewConfigSchemaRenderer(styles.NewTheme())

	out := r.Render([]entity.ConfigKeyInfo{
		{Key: "bindings.cut-line.key", Type: "string", Default: "Ctrl+X", Description: "Cut the current line", Section: "Bindings"},
		{Key: "bindings.cut-line.enabled", Type: "bool", Default: "true", Section: "Bindings"},
		{Key: "bindings.trim-whitespace.key", Type: "string", Default: "Ctrl+K Ctrl+X", Section: "Bindings"},
		{Key: "bindings.trim-whitespace.enabled", Type: "bool", Default: "false", Section: "Bindings"},
	})

	assert.NotContains(t, out, "bindings.cut-line.key")
	assert.Equal(t, 1, strings.Count(out, "cut-line"))
	assert.Contains(t, out, "Ctrl+X")
	assert.Contains(t, out, "Cut the current line")
	assert.Contains(t, out, "(off)")
	assert.Less(t, indexOf(out, "trim-whitespace"), indexOf(out, "(off)"))
}
