package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

// ApplyRenderer renders the effect of an action on a text.
type ApplyRenderer struct {
	theme *Theme
	dmp   *dmp.DiffMatchPatch
}

// NewApplyRenderer creates a new ApplyRenderer.
func NewApplyRenderer(theme *Theme) *ApplyRenderer {
	return &ApplyRenderer{theme: theme, dmp: dmp.New()}
}

// RenderDiff renders a line diff between before and after. Unchanged lines
// keep a two space gutter.
func (r *ApplyRenderer) RenderDiff(before, after string) string {
	if before == after {
		return r.theme.Subtle.Render("  (no changes)") + "\n"
	}

	a, b, lines := r.dmp.DiffLinesToChars(before, after)
	diffs := r.dmp.DiffCharsToLines(r.dmp.DiffMain(a, b, false), lines)

	added := lipgloss.NewStyle().Foreground(r.theme.Success)
	removed := lipgloss.NewStyle().Foreground(r.theme.Error)

	var sb strings.Builder
	for _, d := range diffs {
		for _, line := range splitKeepLast(d.Text) {
			switch d.Type {
			case dmp.DiffInsert:
				sb.WriteString(added.Render("+ "+line) + "\n")
			case dmp.DiffDelete:
				sb.WriteString(removed.Render("- "+line) + "\n")
			default:
				sb.WriteString(r.theme.Subtle.Render("  "+line) + "\n")
			}
		}
	}
	return sb.String()
}

// RenderInline highlights inserted and deleted characters within one text.
func (r *ApplyRenderer) RenderInline(before, after string) string {
	diffs := r.dmp.DiffCleanupSemantic(r.dmp.DiffMain(before, after, false))

	added := lipgloss.NewStyle().Foreground(r.theme.Background).Background(r.theme.Success)
	removed := lipgloss.NewStyle().Foreground(r.theme.Error).Strikethrough(true)

	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case dmp.DiffInsert:
			sb.WriteString(added.Render(d.Text))
		case dmp.DiffDelete:
			sb.WriteString(removed.Render(d.Text))
		default:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}

// RenderSelection describes a selection as "caret at N" or "selection N-M".
func (r *ApplyRenderer) RenderSelection(start, end int) string {
	if start == end {
		return r.theme.Subtle.Render(fmt.Sprintf("caret at %d", start))
	}
	return r.theme.Subtle.Render(fmt.Sprintf("selection %d-%d", start, end))
}

// splitKeepLast splits a diff chunk into lines, dropping the empty element
// after a trailing newline.
func splitKeepLast(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
