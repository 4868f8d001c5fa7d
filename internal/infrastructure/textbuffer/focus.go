package textbuffer

import (
	"sync"

	"github.com/bnema/linekeys/internal/application/port"
)

// Editability is implemented by buffers that can be read-only or disabled.
type Editability interface {
	ReadOnly() bool
	Disabled() bool
}

// FocusCheck implements port.EditabilityChecker. A buffer is editable when it is
// not read-only or disabled and, if a FocusProvider is set, holds focus.
type FocusCheck struct {
	Focus *FocusProvider
}

// IsEditable implements port.EditabilityChecker.
func (p FocusCheck) IsEditable(buf port.TextBuffer) bool {
	if buf == nil {
		return false
	}
	if e, ok := buf.(Editability); ok && (e.ReadOnly() || e.Disabled()) {
		return false
	}
	if p.Focus != nil && p.Focus.Focused() != buf {
		return false
	}
	return true
}

// FocusProvider tracks which buffer currently has focus.
type FocusProvider struct {
	mu     sync.RWMutex
	target port.TextBuffer
}

// NewFocusProvider creates a new focus provider.
func NewFocusProvider() *FocusProvider {
	return &FocusProvider{}
}

// Focused returns the focused buffer, or nil.
func (fp *FocusProvider) Focused() port.TextBuffer {
	fp.mu.RLock()
	defer fp.mu.RUnlock()
	return fp.target
}

// SetFocused sets the focused buffer. Pass nil to clear focus.
func (fp *FocusProvider) SetFocused(target port.TextBuffer) {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	fp.target = target
}

var _ port.EditabilityChecker = FocusCheck{}
