package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// PlaygroundKeyMap holds the playground's own keys. Everything else goes to
// the shortcut dispatcher or is typed into the buffer.
type PlaygroundKeyMap struct {
	Undo   key.Binding
	Toggle key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k PlaygroundKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Undo, k.Toggle, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k PlaygroundKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Undo, k.Toggle},
		{k.Help, k.Quit},
	}
}

// DefaultPlaygroundKeyMap returns the default playground keybindings.
func DefaultPlaygroundKeyMap() PlaygroundKeyMap {
	return PlaygroundKeyMap{
		Undo: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "undo"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "shortcuts on/off"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+q"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// NewHelp creates a themed help model.
func NewHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = theme.HelpKey
	h.Styles.ShortDesc = theme.HelpDesc
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = theme.HelpKey
	h.Styles.FullDesc = theme.HelpDesc
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
