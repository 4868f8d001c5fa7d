// Package service holds pure domain logic over key combos and bindings.
package service

import (
	"strings"

	"github.com/bnema/linekeys/internal/domain/entity"
)

// MatchesEvent reports whether a live key event satisfies combo.
//
// On Mac the Cmd key stands in for Ctrl. When Alt is held, some layouts
// remap the produced character (Alt+U → "¨"), so for Alt combos the physical
// letter from ev.Code is compared instead.
func MatchesEvent(ev entity.KeyEvent, combo entity.KeyCombo, isMac bool) bool {
	if combo.IsZero() {
		return false
	}

	key := comparableKey(ev, combo)
	if key != combo.Key {
		return false
	}

	if !combo.HasModifiers() {
		return !ev.HasModifiers()
	}

	effectiveCtrl := ev.Ctrl
	if isMac {
		effectiveCtrl = ev.Meta
	}

	if combo.Ctrl != effectiveCtrl || combo.Shift != ev.Shift || combo.Alt != ev.Alt {
		return false
	}
	if !isMac && combo.Meta != ev.Meta {
		return false
	}
	return true
}

func comparableKey(ev entity.KeyEvent, combo entity.KeyCombo) string {
	if combo.Alt && ev.Alt {
		if letter, ok := letterFromCode(ev.Code); ok {
			return letter
		}
	}
	return entity.NormalizeKey(strings.ToLower(ev.Key))
}

// letterFromCode maps a physical code such as "KeyU" to "u".
func letterFromCode(code string) (string, bool) {
	if len(code) != 4 || !strings.HasPrefix(code, "Key") {
		return "", false
	}
	c := code[3]
	if c < 'A' || c > 'Z' {
		return "", false
	}
	return string(c + ('a' - 'A')), true
}
