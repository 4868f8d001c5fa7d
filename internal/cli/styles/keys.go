package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/bnema/linekeys/internal/domain/entity"
	"github.com/bnema/linekeys/internal/domain/service"
	"github.com/bnema/linekeys/internal/domain/url"
)

// KeyRow is one binding in a listing.
type KeyRow struct {
	Action      entity.ActionID
	Category    string
	Description string
	Key         string
	Enabled     bool
	Source      string
}

// KeysRenderer renders binding tables and the results of binding edits.
type KeysRenderer struct {
	theme    *Theme
	platform entity.Platform
}

// NewKeysRenderer creates a renderer showing keys the way platform names them.
func NewKeysRenderer(theme *Theme, platform entity.Platform) *KeysRenderer {
	return &KeysRenderer{theme: theme, platform: platform.Resolve()}
}

// RenderHeader renders the scope a listing was resolved for.
func (r *KeysRenderer) RenderHeader(host string, enabled bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	scope := r.theme.Subtle.Render("all sites")
	if host != "" {
		scope = r.theme.Highlight.Render(host)
	}
	line := fmt.Sprintf("%s %s %s", iconStyle.Render(IconKeyboard), r.theme.Title.Render("Bindings for"), scope)
	if !enabled {
		line += "  " + r.theme.StatusBadge("shortcuts disabled", r.theme.Background, r.theme.Error)
	}
	return line
}

// RenderTable renders rows grouped by category, in row order.
func (r *KeysRenderer) RenderTable(rows []KeyRow) string {
	if len(rows) == 0 {
		return r.theme.Subtle.Render("No bindings")
	}

	actionWidth, keyWidth := 0, 0
	for _, row := range rows {
		actionWidth = max(actionWidth, lipgloss.Width(string(row.Action)))
		keyWidth = max(keyWidth, lipgloss.Width(r.theme.KeyCaps(row.Key, r.platform)))
	}

	root := tree.Root(r.theme.Title.Render("Actions")).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(lipgloss.NewStyle().Foreground(r.theme.Border))

	var current *tree.Tree
	currentCategory := ""
	for _, row := range rows {
		if current == nil || row.Category != currentCategory {
			currentCategory = row.Category
			current = tree.Root(r.theme.Highlight.Render(row.Category))
			root.Child(current)
		}
		current.Child(r.renderRow(row, actionWidth, keyWidth))
	}
	return root.String()
}

func (r *KeysRenderer) renderRow(row KeyRow, actionWidth, keyWidth int) string {
	actionStyle := r.theme.Normal.Width(actionWidth)
	if !row.Enabled {
		actionStyle = r.theme.Subtle.Width(actionWidth).Strikethrough(true)
	}
	keys := lipgloss.NewStyle().Width(keyWidth).Render(r.theme.KeyCaps(row.Key, r.platform))

	return fmt.Sprintf("%s  %s  %s  %s",
		actionStyle.Render(string(row.Action)),
		keys,
		r.theme.EnabledBadge(row.Enabled),
		r.theme.SourceBadge(row.Source),
	)
}

// RenderConflicts renders binding conflicts, or a confirmation when there are none.
func (r *KeysRenderer) RenderConflicts(conflicts []service.Conflict) string {
	if len(conflicts) == 0 {
		icon := lipgloss.NewStyle().Foreground(r.theme.Success).Render(IconCheck)
		return fmt.Sprintf("\n  %s No conflicting bindings\n", icon)
	}

	icon := lipgloss.NewStyle().Foreground(r.theme.Warning).Render(IconWarning)
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n  %s %d conflicting bindings\n", icon, len(conflicts))
	for _, c := range conflicts {
		actions := make([]string, len(c.Actions))
		for i, a := range c.Actions {
			actions[i] = string(a)
		}
		fmt.Fprintf(&sb, "    %s %s  %s\n      %s\n",
			r.theme.WarningStyle.Render(IconCursor),
			r.theme.KeyCaps(c.Key, r.platform),
			r.theme.Subtle.Render(conflictLabel(c.Kind)),
			strings.Join(actions, ", "),
		)
	}
	return sb.String()
}

func conflictLabel(kind service.ConflictKind) string {
	switch kind {
	case service.ConflictShadowedPrefix:
		return "never fires, a chord starts with it"
	default:
		return "bound more than once"
	}
}

// RenderSaved confirms a new key for action.
func (r *KeysRenderer) RenderSaved(action entity.ActionID, keyString, site string) string {
	icon := lipgloss.NewStyle().Foreground(r.theme.Success).Render(IconCheck)
	return fmt.Sprintf("\n  %s %s %s %s%s\n",
		icon,
		r.theme.Highlight.Render(string(action)),
		r.theme.Subtle.Render(IconArrow),
		r.theme.KeyCaps(keyString, r.platform),
		r.scope(site),
	)
}

// RenderToggled confirms an enable or disable.
func (r *KeysRenderer) RenderToggled(action entity.ActionID, enabled bool, site string) string {
	icon := lipgloss.NewStyle().Foreground(r.theme.Success).Render(IconToggleOn)
	verb := "enabled"
	if !enabled {
		icon = r.theme.Subtle.Render(IconToggleOff)
		verb = "disabled"
	}
	return fmt.Sprintf("\n  %s %s %s%s\n", icon, r.theme.Highlight.Render(string(action)), verb, r.scope(site))
}

// RenderReset confirms a reset. An empty action means every binding.
func (r *KeysRenderer) RenderReset(action entity.ActionID, site string) string {
	icon := lipgloss.NewStyle().Foreground(r.theme.Success).Render(IconCheck)
	target := "All bindings"
	if action != "" {
		target = r.theme.Highlight.Render(string(action))
	}
	return fmt.Sprintf("\n  %s %s reset to default%s\n", icon, target, r.scope(site))
}

// RenderError renders an error message.
func (r *KeysRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("\n  %s %v\n", iconStyle.Render(IconX), err)
}

// RenderImported summarizes a settings import.
func (r *KeysRenderer) RenderImported(global, sites, migrated int, skipped []string) string {
	icon := lipgloss.NewStyle().Foreground(r.theme.Success).Render(IconImport)
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n  %s Imported %s global overrides and %s site rules\n",
		icon,
		r.theme.Highlight.Render(fmt.Sprintf("%d", global)),
		r.theme.Highlight.Render(fmt.Sprintf("%d", sites)),
	)
	if migrated > 0 {
		fmt.Fprintf(&sb, "  %s %d entries were in the old on/off format\n", r.theme.Subtle.Render(IconInfo), migrated)
	}
	for _, s := range skipped {
		fmt.Fprintf(&sb, "  %s skipped %s\n", r.theme.WarningStyle.Render(IconWarning), s)
	}
	return sb.String()
}

func (r *KeysRenderer) scope(site string) string {
	if site == "" {
		return ""
	}
	out := " " + r.theme.Subtle.Render("on") + " " + r.theme.SourceBadge(site)
	if url.IsWildcard(site) {
		out += " " + r.theme.Subtle.Render("(subdomains of "+strings.TrimPrefix(site, "*.")+")")
	}
	return out
}
