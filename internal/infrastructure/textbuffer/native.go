package textbuffer

import (
	"context"
	"fmt"

	"github.com/bnema/linekeys/internal/application/port"
)

// NativeMemory is a Memory buffer whose host performs literal clipboard
// operations itself, like a browser text field does.
type NativeMemory struct {
	*Memory
	clipboard port.Clipboard
}

// WithNativeClipboard wraps m so literal cut/copy/paste go through cb.
func WithNativeClipboard(m *Memory, cb port.Clipboard) *NativeMemory {
	return &NativeMemory{Memory: m, clipboard: cb}
}

// NativeCut copies the selection and deletes it.
func (n *NativeMemory) NativeCut(ctx context.Context) error {
	start, end := n.Selection()
	if start == end {
		return nil
	}
	if err := n.clipboard.WriteText(ctx, n.Value()[start:end]); err != nil {
		return fmt.Errorf("native cut: %w", err)
	}
	return n.ReplaceRange(port.Replacement{Start: start, End: end})
}

// NativeCopy copies the selection.
func (n *NativeMemory) NativeCopy(ctx context.Context) error {
	start, end := n.Selection()
	if start == end {
		return nil
	}
	if err := n.clipboard.WriteText(ctx, n.Value()[start:end]); err != nil {
		return fmt.Errorf("native copy: %w", err)
	}
	return nil
}

// NativePaste inserts the clipboard text over the selection.
func (n *NativeMemory) NativePaste(ctx context.Context) error {
	text, err := n.clipboard.ReadText(ctx)
	if err != nil {
		return fmt.Errorf("native paste: %w", err)
	}
	return n.Insert(text)
}

var _ port.NativeClipboardPassthrough = (*NativeMemory)(nil)
