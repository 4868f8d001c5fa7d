package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/linekeys/internal/domain/build"
)

// AboutRenderer renders build info next to a small logo.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render renders build info followed by the locations linekeys reads and writes.
func (r *AboutRenderer) Render(info build.Info, paths []PathEntry) string {
	out := lipgloss.JoinHorizontal(lipgloss.Top, r.renderLogo(), "   ", r.renderInfoLines(info))
	if len(paths) > 0 {
		out += "\n" + NewConfigRenderer(r.theme).RenderPaths(paths)
	}
	return out
}

func (r *AboutRenderer) renderLogo() string {
	logoStyle := lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true)

	// a key cap
	logo := `╭──────╮
│ ⌃  K │
│      │
╰──────╯`

	return logoStyle.MarginTop(1).MarginLeft(2).Render(logo)
}

func (r *AboutRenderer) renderInfoLines(info build.Info) string {
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	version := info.Version
	if version == "" {
		version = "dev"
	}

	lines := []string{
		r.theme.Title.Render("linekeys"),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconVersion), keyStyle.Render("Version"), valStyle.Render(version)),
	}
	if info.Commit != "" {
		lines = append(lines, fmt.Sprintf("%s %s %s", iconStyle.Render(IconInfo), keyStyle.Render("Commit"), valStyle.Render(info.Commit)))
	}
	if info.BuildDate != "" {
		lines = append(lines, fmt.Sprintf("%s %s %s", iconStyle.Render(IconInfo), keyStyle.Render("Built"), valStyle.Render(info.BuildDate)))
	}
	lines = append(lines,
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconGo), keyStyle.Render("Go"), valStyle.Render(info.GoVersion)),
		fmt.Sprintf("%s %s", iconStyle.Render(IconGithub), keyStyle.Render(build.RepoURL())),
	)
	return strings.Join(lines, "\n")
}
