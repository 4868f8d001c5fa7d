package styles

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmModel asks a yes/no question before a file is rewritten. It starts
// on "No". Pressing y or n answers at once; the arrows move the selection
// and enter answers with it.
type ConfirmModel struct {
	Question string
	Details  []string

	yes      bool
	answered bool
	canceled bool

	theme *Theme
	keys  ConfirmKeyMap
	help  help.Model
}

// ConfirmKeyMap holds the dialog keys.
type ConfirmKeyMap struct {
	Yes    key.Binding
	No     key.Binding
	Toggle key.Binding
	Accept key.Binding
	Cancel key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ConfirmKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No, k.Toggle, k.Accept, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k ConfirmKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultConfirmKeyMap returns the dialog keys.
func DefaultConfirmKeyMap() ConfirmKeyMap {
	return ConfirmKeyMap{
		Yes:    key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
		No:     key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n", "no")),
		Toggle: key.NewBinding(key.WithKeys("left", "right", "h", "l", "tab"), key.WithHelp("←/→", "switch")),
		Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "answer")),
		Cancel: key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "cancel")),
	}
}

// NewConfirm creates a dialog for question. Each detail is shown as a
// bullet under it.
func NewConfirm(theme *Theme, question string, details ...string) ConfirmModel {
	return ConfirmModel{
		Question: question,
		Details:  details,
		theme:    theme,
		keys:     DefaultConfirmKeyMap(),
		help:     NewHelp(theme),
	}
}

// Init implements tea.Model.
func (ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update handles a key press. Other messages are ignored.
func (m ConfirmModel) Update(msg tea.Msg) (ConfirmModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.Done() {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Yes):
		m.yes, m.answered = true, true
	case key.Matches(keyMsg, m.keys.No):
		m.yes, m.answered = false, true
	case key.Matches(keyMsg, m.keys.Toggle):
		m.yes = !m.yes
	case key.Matches(keyMsg, m.keys.Accept):
		m.answered = true
	case key.Matches(keyMsg, m.keys.Cancel):
		m.canceled = true
	}
	return m, nil
}

// View renders the question, the details and both buttons.
func (m ConfirmModel) View() string {
	t := m.theme

	yesStyle, noStyle := t.InactiveTab, t.ActiveTab
	if m.yes {
		yesStyle, noStyle = t.ActiveTab, t.InactiveTab
	}

	lines := []string{t.Title.Render(m.Question)}
	if len(m.Details) > 0 {
		var sb strings.Builder
		for i, d := range m.Details {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(t.Subtle.Render("• " + d))
		}
		lines = append(lines, "", sb.String())
	}
	lines = append(lines,
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, noStyle.Render(" No "), "  ", yesStyle.Render(" Yes ")),
		"",
		m.help.View(m.keys),
	)

	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Selected reports whether "Yes" is highlighted.
func (m ConfirmModel) Selected() bool {
	return m.yes
}

// Done reports whether the dialog was answered or canceled.
func (m ConfirmModel) Done() bool {
	return m.answered || m.canceled
}

// Result reports whether the answer was "Yes". A canceled dialog is "No".
func (m ConfirmModel) Result() bool {
	return m.answered && m.yes
}
