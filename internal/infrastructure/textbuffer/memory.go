// Package textbuffer provides in-process text surfaces and focus tracking
// for hosts that own their text, such as the CLI and the playground.
package textbuffer

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/linekeys/internal/application/port"
)

// ErrReadOnly is returned when editing a read-only or disabled buffer.
var ErrReadOnly = errors.New("buffer is read-only")

// ErrOutOfRange is returned for replacements outside the value.
var ErrOutOfRange = errors.New("replacement out of range")

const maxUndo = 200

type undoEntry struct {
	replacement port.Replacement
	start, end  int
}

// Memory is a port.TextBuffer over an in-memory string. Selections are
// clamped into the value and every edit can be undone.
type Memory struct {
	mu         sync.RWMutex
	id         string
	value      string
	start, end int
	singleLine bool
	readOnly   bool
	disabled   bool
	undo       []undoEntry
}

// Option configures a Memory buffer.
type Option func(*Memory)

// WithSurfaceID sets the surface ID (default "memory").
func WithSurfaceID(id string) Option {
	return func(m *Memory) { m.id = id }
}

// WithSingleLine marks the buffer as a single-line input. Line breaks in the
// initial value are replaced with spaces.
func WithSingleLine() Option {
	return func(m *Memory) { m.singleLine = true }
}

// WithReadOnly marks the buffer read-only.
func WithReadOnly() Option {
	return func(m *Memory) { m.readOnly = true }
}

// WithSelection sets the initial selection.
func WithSelection(start, end int) Option {
	return func(m *Memory) { m.start, m.end = start, end }
}

// NewMemory creates a buffer holding value with the caret at the start.
func NewMemory(value string, opts ...Option) *Memory {
	m := &Memory{id: "memory", value: value}
	for _, opt := range opts {
		opt(m)
	}
	if m.singleLine {
		m.value = flattenLines(m.value)
	}
	m.start, m.end = m.clamp(m.start, m.end)
	return m
}

func (m *Memory) Value() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.value
}

func (m *Memory) Selection() (int, int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.start, m.end
}

// SetSelection moves the selection. Offsets are clamped into the value and
// swapped when reversed.
func (m *Memory) SetSelection(start, end int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.start, m.end = m.clamp(start, end)
}

// ReplaceRange applies r and records its inverse for Undo.
func (m *Memory) ReplaceRange(r port.Replacement) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.readOnly || m.disabled {
		return ErrReadOnly
	}
	if r.Start < 0 || r.End < r.Start || r.End > len(m.value) {
		return fmt.Errorf("%w: [%d,%d) of %d bytes", ErrOutOfRange, r.Start, r.End, len(m.value))
	}

	text := r.Text
	if m.singleLine {
		text = flattenLines(text)
	}

	inverse := port.Replacement{
		Text:  m.value[r.Start:r.End],
		Start: r.Start,
		End:   r.Start + len(text),
	}
	m.pushUndo(undoEntry{replacement: inverse, start: m.start, end: m.end})

	m.value = m.value[:r.Start] + text + m.value[r.End:]
	if r.Selection != nil {
		m.start, m.end = m.clamp(r.Selection.Start, r.Selection.End)
	} else {
		caret := r.Start + len(text)
		m.start, m.end = caret, caret
	}
	return nil
}

// Undo reverts the last edit. It reports false when there is nothing to undo.
func (m *Memory) Undo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.undo) == 0 {
		return false
	}
	last := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]

	r := last.replacement
	m.value = m.value[:r.Start] + r.Text + m.value[r.End:]
	m.start, m.end = m.clamp(last.start, last.end)
	return true
}

// Insert types text over the selection, the way a keystroke would.
func (m *Memory) Insert(text string) error {
	start, end := m.Selection()
	return m.ReplaceRange(port.Replacement{Text: text, Start: start, End: end})
}

func (m *Memory) SingleLine() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.singleLine
}

func (m *Memory) SurfaceID() string {
	return m.id
}

// ReadOnly reports whether edits are rejected.
func (m *Memory) ReadOnly() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.readOnly
}

// Disabled reports whether the surface is disabled.
func (m *Memory) Disabled() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.disabled
}

// SetDisabled enables or disables the surface.
func (m *Memory) SetDisabled(disabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.disabled = disabled
}

func (m *Memory) clamp(start, end int) (int, int) {
	n := len(m.value)
	start = min(max(start, 0), n)
	end = min(max(end, 0), n)
	if start > end {
		start, end = end, start
	}
	return start, end
}

func (m *Memory) pushUndo(e undoEntry) {
	if len(m.undo) == maxUndo {
		m.undo = append(m.undo[:0], m.undo[1:]...)
	}
	m.undo = append(m.undo, e)
}

func flattenLines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.NewReplacer("\n", " ", "\r", " ").Replace(s)
}

var _ port.TextBuffer = (*Memory)(nil)
