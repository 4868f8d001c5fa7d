// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/linekeys/internal/application/port"
	"github.com/bnema/linekeys/internal/cli"
	"github.com/bnema/linekeys/internal/cli/styles"
	"github.com/bnema/linekeys/internal/domain/entity"
	"github.com/bnema/linekeys/internal/infrastructure/notify"
	"github.com/bnema/linekeys/internal/infrastructure/textbuffer"
	"github.com/bnema/linekeys/internal/logging"
)

const noticeTick = 250 * time.Millisecond

// Dispatcher is the part of the chord dispatcher the playground drives.
type Dispatcher interface {
	cli.KeyHandler
	PendingPrefix() (string, bool)
	SetEnabled(enabled bool)
	Reset()
}

// Editor is the per-surface state of the edit actions the playground reads.
type Editor interface {
	OwnsPaste() bool
	SearchTerm(surfaceID string) string
	ForgetSurface(surfaceID string)
}

// RefreshMsg asks the playground to redraw, for example after a
// notification was posted from a timer.
type RefreshMsg struct{}

// BindingsChangedMsg reports that settings were reloaded.
type BindingsChangedMsg struct {
	Enabled bool
}

type tickMsg time.Time

// PlaygroundConfig holds the playground dependencies.
type PlaygroundConfig struct {
	Buffer     *textbuffer.NativeMemory
	Focus      *textbuffer.FocusProvider
	Dispatcher Dispatcher
	Notices    *notify.Queue
	Platform   entity.Platform
	Host       string
	Enabled    bool
	// SaveEnabled persists the global switch; nil keeps it in memory.
	SaveEnabled func(enabled bool) error

	// Editor, if set, guards pastes and shows the occurrence search term.
	Editor Editor
}

// PlaygroundModel is an editable text area wired to the shortcut dispatcher.
type PlaygroundModel struct {
	ctx   context.Context
	theme *styles.Theme
	help  help.Model
	keys  styles.PlaygroundKeyMap

	buf        *textbuffer.NativeMemory
	focus      *textbuffer.FocusProvider
	dispatcher Dispatcher
	editor     Editor
	notices    *notify.Queue
	platform   entity.Platform
	host       string
	save       func(bool) error

	caret   caret
	enabled bool
	ticking bool
	width   int
	height  int
	err     error
}

// NewPlaygroundModel creates the playground model.
func NewPlaygroundModel(ctx context.Context, theme *styles.Theme, cfg PlaygroundConfig) PlaygroundModel {
	if cfg.Focus != nil {
		cfg.Focus.SetFocused(cfg.Buffer)
	}
	return PlaygroundModel{
		ctx:        ctx,
		theme:      theme,
		help:       styles.NewHelp(theme),
		keys:       styles.DefaultPlaygroundKeyMap(),
		buf:        cfg.Buffer,
		focus:      cfg.Focus,
		dispatcher: cfg.Dispatcher,
		editor:     cfg.Editor,
		notices:    cfg.Notices,
		platform:   cfg.Platform.Resolve(),
		host:       cfg.Host,
		save:       cfg.SaveEnabled,
		enabled:    cfg.Enabled,
		width:      80,
		height:     24,
	}
}

// Text returns the current buffer contents.
func (m PlaygroundModel) Text() string {
	return m.buf.Value()
}

func (m PlaygroundModel) Init() tea.Cmd {
	return nil
}

func (m PlaygroundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.FocusMsg:
		if m.focus != nil {
			m.focus.SetFocused(m.buf)
		}
		return m, nil

	case tea.BlurMsg:
		if m.focus != nil {
			m.focus.SetFocused(nil)
		}
		m.dispatcher.Reset()
		return m, nil

	case BindingsChangedMsg:
		m.enabled = msg.Enabled
		m.dispatcher.SetEnabled(msg.Enabled)
		return m, nil

	case RefreshMsg:
		return m, m.scheduleTick()

	case tickMsg:
		m.ticking = false
		return m, m.scheduleTick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m PlaygroundModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.dispatcher.Reset()
		if m.editor != nil {
			m.editor.ForgetSurface(m.buf.SurfaceID())
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Toggle):
		m.toggle()
		return m, m.scheduleTick()
	case key.Matches(msg, m.keys.Undo):
		m.dispatcher.Reset()
		m.buf.Undo()
		return m, nil
	}

	m.err = nil
	if msg.Paste {
		// the terminal echoes our own clipboard writes as bracketed pastes
		if m.editor != nil && m.editor.OwnsPaste() {
			logging.FromContext(m.ctx).Debug().Msg("ignoring paste while an edit action owns the clipboard")
			return m, nil
		}
		m.err = m.buf.Insert(string(msg.Runes))
		return m, nil
	}

	ev, ok := KeyEventFromMsg(msg, m.platform)
	if !ok {
		return m, nil
	}
	handled, err := cli.Press(m.ctx, m.dispatcher, m.buf, ev)
	if err != nil {
		m.err = err
	} else if !handled {
		_, m.err = m.caret.handle(m.buf, ev)
	}

	logging.FromContext(m.ctx).Trace().
		Str("key", msg.String()).
		Bool("handled", handled).
		Msg("playground key")
	return m, m.scheduleTick()
}

func (m *PlaygroundModel) toggle() {
	enabled := !m.enabled
	if m.save != nil {
		if err := m.save(enabled); err != nil {
			m.err = err
			return
		}
	}
	m.enabled = enabled
	m.dispatcher.SetEnabled(enabled)
	state := "off"
	if enabled {
		state = "on"
	}
	if m.notices != nil {
		m.notices.Show(m.ctx, m.buf.SurfaceID(), "Shortcuts "+state, port.NotificationInfo, 0)
	}
}

// scheduleTick keeps redrawing while notices or a chord prefix are on
// screen so they disappear when they expire.
func (m *PlaygroundModel) scheduleTick() tea.Cmd {
	if m.ticking {
		return nil
	}
	_, pending := m.dispatcher.PendingPrefix()
	if !pending && (m.notices == nil || len(m.notices.Active()) == 0) {
		return nil
	}
	m.ticking = true
	return tea.Tick(noticeTick, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m PlaygroundModel) View() string {
	var sb strings.Builder

	sb.WriteString(m.renderHeader())
	sb.WriteString("\n\n")

	boxWidth := max(m.width-4, 20)
	style := m.theme.InputFocused
	if m.focus != nil && m.focus.Focused() == nil {
		style = m.theme.Input
	}
	sb.WriteString(style.Width(boxWidth).Render(m.renderBuffer()))
	sb.WriteString("\n")
	sb.WriteString(m.renderStatus())
	sb.WriteString("\n")

	if prefix, ok := m.dispatcher.PendingPrefix(); ok {
		fmt.Fprintf(&sb, "\n  %s %s\n", m.theme.KeyCaps(prefix, m.platform), m.theme.Subtle.Render("waiting for the second key"))
	}
	if m.notices != nil {
		for _, n := range m.notices.Active() {
			fmt.Fprintf(&sb, "\n  %s", notify.Format(n.Text, n.Type))
		}
	}
	if m.err != nil {
		fmt.Fprintf(&sb, "\n  %s", notify.Format(m.err.Error(), port.NotificationError))
	}

	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m PlaygroundModel) renderHeader() string {
	title := m.theme.Title.Render(styles.IconKeyboard + " linekeys playground")
	parts := []string{title, m.theme.EnabledBadge(m.enabled), m.theme.MutedBadge(string(m.platform))}
	if m.host != "" {
		parts = append(parts, m.theme.SourceBadge(m.host))
	}
	return strings.Join(parts, " ")
}

func (m PlaygroundModel) renderStatus() string {
	text := m.buf.Value()
	start, end := m.buf.Selection()
	line := strings.Count(text[:end], "\n") + 1
	col := utf8.RuneCountInString(text[strings.LastIndexByte(text[:end], '\n')+1:end]) + 1

	status := fmt.Sprintf("Ln %d, Col %d", line, col)
	if start != end {
		status += fmt.Sprintf(" (%d selected)", utf8.RuneCountInString(text[start:end]))
	}
	if m.editor != nil {
		if term := m.editor.SearchTerm(m.buf.SurfaceID()); term != "" {
			status += fmt.Sprintf("  Find %q", term)
		}
	}
	return m.theme.Subtle.Render("  " + status)
}

// renderBuffer draws the text with the selection highlighted, or a block
// caret when the selection is empty.
func (m PlaygroundModel) renderBuffer() string {
	start, end := m.buf.Selection()
	return RenderSelection(m.theme, m.buf.Value(), start, end)
}

// RenderSelection draws text with [start, end) highlighted. An empty range
// draws a caret instead.
func RenderSelection(theme *styles.Theme, text string, start, end int) string {
	start = max(0, min(start, len(text)))
	end = max(start, min(end, len(text)))

	var sb strings.Builder
	sb.WriteString(text[:start])
	if start == end {
		r, size := utf8.DecodeRuneInString(text[start:])
		switch {
		case size == 0 || r == '\n':
			sb.WriteString(theme.Caret.Render(" "))
			sb.WriteString(text[start:])
		default:
			sb.WriteString(theme.Caret.Render(string(r)))
			sb.WriteString(text[start+size:])
		}
		return sb.String()
	}

	// style each line separately so the highlight does not bleed across breaks
	lines := strings.Split(text[start:end], "\n")
	for i, line := range lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		if line != "" {
			sb.WriteString(theme.Selection.Render(line))
		}
	}
	sb.WriteString(text[end:])
	return sb.String()
}
