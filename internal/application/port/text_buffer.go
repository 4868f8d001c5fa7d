package port

import "context"

// Range is a selection span in byte offsets.
type Range struct {
	Start int
	End   int
}

// Replacement replaces [Start, End) of the buffer value with Text.
// A nil Selection collapses the caret at the end of the inserted text.
type Replacement struct {
	Text      string
	Start     int
	End       int
	Selection *Range
}

// TextBuffer is the editable surface the editing engine works on.
// Implementations include plain text fields, text areas and the in-memory
// buffer used by the CLI. Offsets are byte offsets into Value and
// implementations keep 0 <= start <= end <= len(Value()).
type TextBuffer interface {
	// Value returns the current text.
	Value() string

	// Selection returns the current selection; start == end for a caret.
	Selection() (start, end int)

	// SetSelection moves the selection, clamping into the value.
	SetSelection(start, end int)

	// ReplaceRange edits the value. Hosts should record the edit in their
	// own undo history where they have one.
	ReplaceRange(r Replacement) error

	// SingleLine reports whether the surface rejects line breaks.
	SingleLine() bool

	// SurfaceID identifies the surface for per-surface state such as the
	// occurrence search term.
	SurfaceID() string
}

// NativeClipboardPassthrough is implemented by buffers whose host performs
// literal cut/copy/paste itself. The engine delegates to it when there is
// nothing line-aware to do.
type NativeClipboardPassthrough interface {
	NativeCut(ctx context.Context) error
	NativeCopy(ctx context.Context) error
	NativePaste(ctx context.Context) error
}

// EditabilityChecker decides whether key events on a buffer should be handled.
type EditabilityChecker interface {
	IsEditable(buf TextBuffer) bool
}

// EditabilityCheckFunc adapts a function to EditabilityChecker.
type EditabilityCheckFunc func(buf TextBuffer) bool

// IsEditable implements EditabilityChecker.
func (f EditabilityCheckFunc) IsEditable(buf TextBuffer) bool {
	return f(buf)
}
