package entity

import "strings"

// KeyEvent is a live keyboard event as delivered by a host.
// Key is the produced character or named key ("k", "K", "Enter", " ").
// Code is the physical key code ("KeyK", "Digit1") and may be empty.
type KeyEvent struct {
	Key   string
	Code  string
	Ctrl  bool
	Shift bool
	Alt   bool
	Meta  bool
}

var modifierOnlyKeys = map[string]struct{}{
	"control":  {},
	"ctrl":     {},
	"shift":    {},
	"alt":      {},
	"altgraph": {},
	"meta":     {},
	"os":       {},
	"super":    {},
	"hyper":    {},
	"capslock": {},
}

// IsModifierOnly reports whether the event is a bare modifier press.
func (e KeyEvent) IsModifierOnly() bool {
	_, ok := modifierOnlyKeys[strings.ToLower(e.Key)]
	return ok
}

// HasModifiers reports whether any modifier key is held.
func (e KeyEvent) HasModifiers() bool {
	return e.Ctrl || e.Shift || e.Alt || e.Meta
}

// EventFromCombo builds the event a user produces when pressing combo.
// Used by hosts that replay key strings (CLI, tests).
func EventFromCombo(combo KeyCombo, platform Platform) KeyEvent {
	ev := KeyEvent{
		Key:   combo.Key,
		Shift: combo.Shift,
		Alt:   combo.Alt,
		Meta:  combo.Meta,
		Ctrl:  combo.Ctrl,
	}
	if platform.IsMac() && combo.Ctrl {
		ev.Ctrl = false
		ev.Meta = true
	}
	switch {
	case combo.Key == "space":
		ev.Key = " "
	case combo.Key == "plus":
		ev.Key = "+"
	case len(combo.Key) == 1 && combo.Key[0] >= 'a' && combo.Key[0] <= 'z':
		ev.Code = "Key" + strings.ToUpper(combo.Key)
	}
	return ev
}
