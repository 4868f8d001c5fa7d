package cli

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/bnema/linekeys/internal/application/port"
	"github.com/bnema/linekeys/internal/domain/entity"
)

// KeyHandler consumes key events that match a binding.
type KeyHandler interface {
	HandleKeyEvent(ctx context.Context, buf port.TextBuffer, ev entity.KeyEvent) bool
}

// Typist is a buffer that accepts typed text.
type Typist interface {
	port.TextBuffer
	Insert(text string) error
	ReadOnly() bool
}

// TypedText returns the text a key event types into a field, if any.
// Events carrying Ctrl, Alt or Meta never type.
func TypedText(ev entity.KeyEvent) (string, bool) {
	if ev.Ctrl || ev.Alt || ev.Meta {
		return "", false
	}
	switch strings.ToLower(ev.Key) {
	case "enter":
		return "\n", true
	case "tab":
		return "\t", true
	case "space":
		return " ", true
	}
	if utf8.RuneCountInString(ev.Key) != 1 {
		return "", false
	}
	if ev.Shift {
		return strings.ToUpper(ev.Key), true
	}
	return ev.Key, true
}

// Press feeds ev to h and types it into buf when no binding consumed it.
// handled reports whether the buffer or a binding reacted.
func Press(ctx context.Context, h KeyHandler, buf Typist, ev entity.KeyEvent) (handled bool, err error) {
	if h.HandleKeyEvent(ctx, buf, ev) {
		return true, nil
	}
	text, ok := TypedText(ev)
	if !ok || buf.ReadOnly() {
		return false, nil
	}
	if buf.SingleLine() && text == "\n" {
		return false, nil
	}
	return true, buf.Insert(text)
}
