package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/linekeys/internal/domain/entity"
)

// AccentBadge renders a badge with accent color.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// StatusBadge renders a status badge with custom colors.
func (t *Theme) StatusBadge(text string, fg, bg lipgloss.Color) string {
	style := lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Padding(0, 1)
	return style.Render(text)
}

// EnabledBadge renders "on" or "off".
func (t *Theme) EnabledBadge(enabled bool) string {
	if enabled {
		return t.StatusBadge("on", t.Background, t.Success)
	}
	return t.MutedBadge("off")
}

// SourceBadge renders where a binding comes from: "default", "global" or a
// site pattern.
func (t *Theme) SourceBadge(source string) string {
	switch {
	case source == "" || source == "default":
		return t.Subtle.Render("default")
	case source == "global":
		return t.AccentBadge("global")
	default:
		return t.StatusBadge(source, t.Background, t.Warning)
	}
}

// KeyCaps renders a binding key string as one cap per chord part, using the
// platform's modifier names.
func (t *Theme) KeyCaps(keyString string, platform entity.Platform) string {
	parts := strings.Fields(keyString)
	if len(parts) == 0 {
		return t.Subtle.Render("unbound")
	}
	style := t.KeyCap
	if len(parts) > 1 {
		style = t.KeyCapChord
	}
	caps := make([]string, 0, len(parts))
	for _, part := range parts {
		caps = append(caps, style.Render(entity.FormatKeyString(part, platform)))
	}
	return strings.Join(caps, " ")
}
