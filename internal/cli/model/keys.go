package model

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/linekeys/internal/domain/entity"
)

// KeyEventFromMsg translates a terminal key press into the event a browser
// would report for it. Terminals have no Cmd key, so on mac Ctrl presses
// are reported as Meta and mac bindings stay reachable.
func KeyEventFromMsg(msg tea.KeyMsg, platform entity.Platform) (entity.KeyEvent, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Paste || len(msg.Runes) != 1 {
			return entity.KeyEvent{}, false
		}
		r := msg.Runes[0]
		ev := entity.KeyEvent{Key: string(r), Alt: msg.Alt, Shift: unicode.IsUpper(r)}
		if lower := unicode.ToLower(r); lower >= 'a' && lower <= 'z' {
			ev.Code = "Key" + strings.ToUpper(string(lower))
		}
		return ev, true
	case tea.KeySpace:
		return entity.KeyEvent{Key: " ", Code: "Space", Alt: msg.Alt}, true
	}

	combo := entity.ParseCombo(msg.String())
	if combo.IsZero() {
		return entity.KeyEvent{}, false
	}
	return entity.EventFromCombo(combo, platform), true
}
