package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/linekeys/internal/domain/entity"
)

const bindingsSection = "Bindings"

// ConfigSchemaRenderer renders configuration schema information.
type ConfigSchemaRenderer struct {
	theme *Theme
}

// NewConfigSchemaRenderer creates a new ConfigSchemaRenderer.
func NewConfigSchemaRenderer(theme *Theme) *ConfigSchemaRenderer {
	return &ConfigSchemaRenderer{theme: theme}
}

// Render renders the configuration schema in styled format. Binding keys
// are folded into one row per action.
func (r *ConfigSchemaRenderer) Render(keys []entity.ConfigKeyInfo) string {
	if len(keys) == 0 {
		return r.theme.Subtle.Render("No configuration keys found")
	}

	sections := groupBySection(keys)
	parts := []string{r.renderHeader(), ""}

	// Sections missing from the schema are skipped.
	for _, section := range []string{"Editor", "Logging", "Database", bindingsSection} {
		sectionKeys, ok := sections[section]
		if !ok {
			continue
		}
		body := r.renderKeys(sectionKeys)
		if section == bindingsSection {
			body = r.renderBindings(sectionKeys)
		}
		parts = append(parts, r.renderBox(section, body), "")
	}

	return strings.Join(parts, "\n")
}

func (r *ConfigSchemaRenderer) renderHeader() string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("%s %s", iconStyle.Render(IconConfig), r.theme.Title.Render("linekeys configuration"))
}

func groupBySection(keys []entity.ConfigKeyInfo) map[string][]entity.ConfigKeyInfo {
	sections := make(map[string][]entity.ConfigKeyInfo)
	for _, key := range keys {
		sections[key.Section] = append(sections[key.Section], key)
	}
	return sections
}

// renderBox puts the section title on the box's first line.
func (r *ConfigSchemaRenderer) renderBox(name, body string) string {
	return r.theme.Box.PaddingTop(0).Render(r.theme.Highlight.Render(name) + "\n" + body)
}

func (r *ConfigSchemaRenderer) renderKeys(keys []entity.ConfigKeyInfo) string {
	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, r.renderKey(key))
	}
	return strings.Join(lines, "\n")
}

func (r *ConfigSchemaRenderer) renderKey(key entity.ConfigKeyInfo) string {
	defaultStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	lines := []string{
		fmt.Sprintf("%s  %s  %s",
			r.theme.Normal.Bold(true).Render(key.Key),
			r.theme.Subtle.Render(key.Type),
			defaultStyle.Render(key.Default)),
		"  " + r.theme.Subtle.Render(key.Description),
	}

	switch {
	case len(key.Values) > 0:
		lines = append(lines, "  "+r.theme.Normal.Render("Values: "+strings.Join(key.Values, ", ")))
	case key.Range != "":
		lines = append(lines, "  "+r.theme.Normal.Render("Range: "+key.Range))
	}

	return strings.Join(lines, "\n")
}

// bindingRow is one action's key and enabled defaults.
type bindingRow struct {
	action      string
	key         string
	enabled     string
	description string
}

// renderBindings folds bindings.<action>.key and bindings.<action>.enabled
// into one row. Keys of any other shape are rendered one by one below.
func (r *ConfigSchemaRenderer) renderBindings(keys []entity.ConfigKeyInfo) string {
	var rows []*bindingRow
	byAction := make(map[string]*bindingRow)
	var rest []entity.ConfigKeyInfo

	for _, key := range keys {
		action, field, ok := splitBindingKey(key.Key)
		if !ok {
			rest = append(rest, key)
			continue
		}
		row, seen := byAction[action]
		if !seen {
			row = &bindingRow{action: action}
			byAction[action] = row
			rows = append(rows, row)
		}
		switch field {
		case "key":
			row.key = key.Default
			row.description = key.Description
		case "enabled":
			row.enabled = key.Default
		}
	}

	width := 0
	for _, row := range rows {
		width = max(width, lipgloss.Width(row.action))
	}

	nameStyle := r.theme.Normal.Bold(true).Width(width)
	lines := make([]string, 0, len(rows)+1)
	for _, row := range rows {
		line := fmt.Sprintf("%s  %s", nameStyle.Render(row.action), r.theme.KeyCaps(row.key, entity.PlatformOther))
		if row.enabled == "false" {
			line += "  " + r.theme.Subtle.Render("(off)")
		}
		if row.description != "" {
			line += "\n  " + r.theme.Subtle.Render(row.description)
		}
		lines = append(lines, line)
	}
	if len(rest) > 0 {
		lines = append(lines, r.renderKeys(rest))
	}

	return strings.Join(lines, "\n")
}

func splitBindingKey(key string) (action, field string, ok bool) {
	rest, found := strings.CutPrefix(key, "bindings.")
	if !found {
		return "", "", false
	}
	dot := strings.LastIndexByte(rest, '.')
	if dot <= 0 {
		return "", "", false
	}
	return rest[:dot], rest[dot+1:], true
}
