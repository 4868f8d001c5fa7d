package styles

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/linekeys/internal/application/port"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file path followed by what a
// migration would change.
func (r *ConfigRenderer) RenderConfigInfo(path string, missingCount, legacyCount int) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	countStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n  %s Config %s\n", iconStyle.Render(IconConfig), r.theme.Subtle.Render(path))
	if missingCount > 0 {
		fmt.Fprintf(&sb, "  %s %s new settings available\n",
			iconStyle.Render(IconInfo), countStyle.Render(fmt.Sprintf("%d", missingCount)))
	}
	if legacyCount > 0 {
		fmt.Fprintf(&sb, "  %s %s bindings use the old on/off format\n",
			iconStyle.Render(IconInfo), countStyle.Render(fmt.Sprintf("%d", legacyCount)))
	}
	return sb.String()
}

// RenderMissingKeys renders the list of missing keys with their types and default values.
func (r *ConfigRenderer) RenderMissingKeys(keys []port.KeyInfo) string {
	if len(keys) == 0 {
		return ""
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	valueStyle := lipgloss.NewStyle().Foreground(r.theme.Text)

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n  Missing settings (%d):\n", len(keys))
	for _, key := range keys {
		fmt.Fprintf(&sb, "    %s %s\n      Type: %s | Default: %s\n",
			iconStyle.Render(IconCursor),
			r.theme.Highlight.Render(key.Key),
			r.theme.Subtle.Render(key.Type),
			valueStyle.Render(key.DefaultValue),
		)
	}
	return sb.String()
}

// RenderMigrationSuccess renders the success message after migration.
func (r *ConfigRenderer) RenderMigrationSuccess(count int, path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Updated %s settings in %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Highlight.Render(fmt.Sprintf("%d", count)),
		r.theme.Subtle.Render(filepath.Base(path)),
	)
}

// RenderUpToDate renders the "config is up to date" message.
func (r *ConfigRenderer) RenderUpToDate(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Config %s\n  %s Config is up to date\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
		iconStyle.Render(IconCheck),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("\n  %s Config error: %v\n", iconStyle.Render(IconX), err)
}

// RenderMigrateHint renders a hint to run the migrate command.
func (r *ConfigRenderer) RenderMigrateHint() string {
	return fmt.Sprintf("\n  %s\n", r.theme.Subtle.Render("Run 'linekeys config migrate' to update the config file."))
}

// RenderNoConfigFile renders message when config file doesn't exist yet.
func (r *ConfigRenderer) RenderNoConfigFile(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	return fmt.Sprintf(
		"\n  %s Config %s\n  %s\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
		r.theme.Subtle.Render("Config file will be created on first run with all defaults."),
	)
}

// RenderSchemaWritten renders the path of a generated JSON schema.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s Schema written to %s\n", iconStyle.Render(IconCheck), r.theme.Subtle.Render(path))
}

// PathEntry is one labelled filesystem location.
type PathEntry struct {
	Label string
	Path  string
}

// RenderPaths renders a labelled list of locations.
func (r *ConfigRenderer) RenderPaths(entries []PathEntry) string {
	width := 0
	for _, e := range entries {
		width = max(width, lipgloss.Width(e.Label))
	}
	labelStyle := r.theme.Normal.Bold(true).Width(width)

	var sb strings.Builder
	sb.WriteString("\n")
	for _, e := range entries {
		fmt.Fprintf(&sb, "  %s  %s\n", labelStyle.Render(e.Label), r.theme.Subtle.Render(e.Path))
	}
	return sb.String()
}

// RenderMasterSwitch renders the state of the global on/off switch.
func (r *ConfigRenderer) RenderMasterSwitch(enabled bool) string {
	icon, state, color := IconToggleOff, "off", r.theme.Warning
	if enabled {
		icon, state, color = IconToggleOn, "on", r.theme.Success
	}
	iconStyle := lipgloss.NewStyle().Foreground(color)
	return fmt.Sprintf("\n  %s Editing shortcuts are %s\n", iconStyle.Render(icon), r.theme.Highlight.Render(state))
}
