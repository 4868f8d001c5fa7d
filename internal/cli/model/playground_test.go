package model

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/linekeys/internal/application/usecase"
	"github.com/bnema/linekeys/internal/cli/styles"
	"github.com/bnema/linekeys/internal/domain/entity"
	"github.com/bnema/linekeys/internal/infrastructure/clipboard"
	"github.com/bnema/linekeys/internal/infrastructure/notify"
	"github.com/bnema/linekeys/internal/infrastructure/textbuffer"
)

type staticBindings struct {
	table *entity.EffectiveBindingTable
}

func (s staticBindings) Table() *entity.EffectiveBindingTable { return s.table }

func defaultTable() staticBindings {
	var bindings []entity.EffectiveBinding
	for _, a := range entity.DefaultActions() {
		bindings = append(bindings, entity.EffectiveBinding{
			Action:  a.ID,
			Key:     a.DefaultKey,
			Enabled: a.DefaultEnabled,
			IsChord: a.IsChord(),
		})
	}
	return staticBindings{table: entity.NewEffectiveBindingTable("", bindings)}
}

func newTestPlayground(t *testing.T, text string, start, end int) PlaygroundModel {
	t.Helper()
	m, _ := newTestPlaygroundWithEditor(t, text, start, end, usecase.EditOptions{})
	return m
}

func newTestPlaygroundWithEditor(
	t *testing.T,
	text string,
	start, end int,
	opts usecase.EditOptions,
) (PlaygroundModel, *usecase.EditActionsUseCase) {
	t.Helper()
	ctx := context.Background()

	cb := clipboard.NewMemory("")
	buf := textbuffer.WithNativeClipboard(textbuffer.NewMemory(text,
		textbuffer.WithSurfaceID("playground"),
		textbuffer.WithSelection(start, end),
	), cb)
	focus := textbuffer.NewFocusProvider()
	queue := notify.NewQueue(nil)
	editor := usecase.NewEditActionsUseCase(cb, queue, opts)
	dispatcher := usecase.NewChordDispatcher(defaultTable(), textbuffer.FocusCheck{Focus: focus}, queue, editor.Handle,
		usecase.DispatcherOptions{Platform: entity.PlatformOther})

	return NewPlaygroundModel(ctx, styles.NewTheme(), PlaygroundConfig{
		Buffer:     buf,
		Focus:      focus,
		Dispatcher: dispatcher,
		Notices:    queue,
		Platform:   entity.PlatformOther,
		Enabled:    true,
		Editor:     editor,
	}), editor
}

func press(t *testing.T, m PlaygroundModel, msgs ...tea.KeyMsg) PlaygroundModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(PlaygroundModel)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPlayground_TypesPlainKeys(t *testing.T) {
	m := newTestPlayground(t, "", 0, 0)

	m = press(t, m, runes("h"), runes("I"), tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeySpace})

	assert.Equal(t, "hI\n ", m.Text())
	assert.NoError(t, m.err)
}

func TestPlayground_MoveLineDown(t *testing.T) {
	m := newTestPlayground(t, "one\ntwo\nthree", 1, 1)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown, Alt: true})

	assert.Equal(t, "two\none\nthree", m.Text())
	start, end := m.buf.Selection()
	assert.Equal(t, 5, start)
	assert.Equal(t, 5, end)
}

func TestPlayground_ChordShowsPrefixThenRuns(t *testing.T) {
	m := newTestPlayground(t, "x := 1", 0, 0)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlK})
	assert.Contains(t, m.View(), "waiting for the second key")
	assert.Equal(t, "x := 1", m.Text(), "prefix alone does not type")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.NotContains(t, m.View(), "waiting for the second key")
	assert.Equal(t, "// x := 1", m.Text())
}

func TestPlayground_UndoReverts(t *testing.T) {
	m := newTestPlayground(t, "a\nb", 0, 0)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown, Alt: true})
	require.Equal(t, "b\na", m.Text())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlZ})
	assert.Equal(t, "a\nb", m.Text())
}

func TestPlayground_ToggleDisablesShortcuts(t *testing.T) {
	var saved []bool
	m := newTestPlayground(t, "a\nb", 0, 0)
	m.save = func(enabled bool) error {
		saved = append(saved, enabled)
		return nil
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyF2})
	assert.False(t, m.enabled)
	assert.Equal(t, []bool{false}, saved)
	assert.Contains(t, m.View(), "Shortcuts off")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown, Alt: true})
	assert.Equal(t, "a\nb", m.Text(), "disabled dispatcher leaves the text alone")
}

func TestPlayground_BlurStopsDispatch(t *testing.T) {
	m := newTestPlayground(t, "a\nb", 0, 0)

	next, _ := m.Update(tea.BlurMsg{})
	m = next.(PlaygroundModel)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown, Alt: true})
	assert.Equal(t, "a\nb", m.Text())

	next, _ = m.Update(tea.FocusMsg{})
	m = next.(PlaygroundModel)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown, Alt: true})
	assert.Equal(t, "b\na", m.Text())
}

func TestPlayground_QuitKeys(t *testing.T) {
	m := newTestPlayground(t, "", 0, 0)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	// ctrl+c is copy-line, never quit
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd != nil {
		assert.NotEqual(t, tea.QuitMsg{}, cmd())
	}
}

func TestPlayground_Paste(t *testing.T) {
	t.Run("inserted at caret", func(t *testing.T) {
		m := newTestPlayground(t, "ab", 1, 1)

		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("xy"), Paste: true})
		assert.Equal(t, "axyb", m.Text())
	})

	t.Run("echo of a line copy is dropped", func(t *testing.T) {
		m, editor := newTestPlaygroundWithEditor(t, "one\ntwo", 0, 0, usecase.EditOptions{PasteGuard: time.Minute})

		m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
		require.True(t, editor.OwnsPaste())

		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("one\n"), Paste: true})
		assert.Equal(t, "one\ntwo", m.Text())
	})
}

func TestPlayground_SearchTermShownAndForgotten(t *testing.T) {
	m, editor := newTestPlaygroundWithEditor(t, "foo bar foo", 1, 1, usecase.EditOptions{})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	require.Equal(t, "foo", editor.SearchTerm("playground"))
	assert.Contains(t, m.View(), `Find "foo"`)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Empty(t, editor.SearchTerm("playground"))
}

func TestRenderSelection(t *testing.T) {
	theme := styles.NewTheme()

	assert.Equal(t, "abc", stripANSI(RenderSelection(theme, "abc", 1, 1)))
	assert.Equal(t, "abc ", stripANSI(RenderSelection(theme, "abc", 3, 3)), "caret at the end is drawn as a space")
	assert.Equal(t, "a\nb", stripANSI(RenderSelection(theme, "a\nb", 0, 3)))
}
