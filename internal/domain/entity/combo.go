package entity

import (
	"strings"
)

// KeyCombo is a single key press with its required modifiers.
// Key holds the normalized key token ("k", "enter", "arrowup", "[", ...).
type KeyCombo struct {
	Ctrl  bool
	Shift bool
	Alt   bool
	Meta  bool
	Key   string
}

// keyAliases maps raw key names, as typed by users or reported by hosts,
// to their canonical token.
var keyAliases = map[string]string{
	" ":         "space",
	"spacebar":  "space",
	"esc":       "escape",
	"return":    "enter",
	"up":        "arrowup",
	"down":      "arrowdown",
	"left":      "arrowleft",
	"right":     "arrowright",
	"del":       "delete",
	"ins":       "insert",
	"+":         "plus",
	"page_up":   "pageup",
	"page_down": "pagedown",
	"pgup":      "pageup",
	"pgdn":      "pagedown",
	"minus":     "-",
	"equal":     "=",
	"slash":     "/",
	"backslash": "\\",
	"comma":     ",",
	"period":    ".",
	"semicolon": ";",

	"bracketleft":  "[",
	"bracketright": "]",
}

// keyDisplayNames holds the canonical spelling of multi-word key tokens.
var keyDisplayNames = map[string]string{
	"arrowup":    "ArrowUp",
	"arrowdown":  "ArrowDown",
	"arrowleft":  "ArrowLeft",
	"arrowright": "ArrowRight",
	"pageup":     "PageUp",
	"pagedown":   "PageDown",
}

// modifier tokens recognised by ParseCombo.
const (
	modCtrl  = "ctrl"
	modShift = "shift"
	modAlt   = "alt"
	modMeta  = "meta"
)

var modifierByName = map[string]string{
	"ctrl":    modCtrl,
	"control": modCtrl,
	"shift":   modShift,
	"alt":     modAlt,
	"option":  modAlt,
	"opt":     modAlt,
	"meta":    modMeta,
	"cmd":     modMeta,
	"command": modMeta,
	"win":     modMeta,
	"super":   modMeta,
}

// NormalizeKey lowercases a raw key name and maps it through the alias table.
// Unknown names pass through lowercased.
func NormalizeKey(raw string) string {
	if raw == " " {
		return "space"
	}
	key := strings.ToLower(strings.TrimSpace(raw))
	if alias, ok := keyAliases[key]; ok {
		return alias
	}
	return key
}

// ParseCombo parses a human-readable combo such as "Ctrl+Shift+K".
// Only the first whitespace-separated part is read; use SplitChord for
// two-part chords. Malformed input yields a combo that never matches.
func ParseCombo(keyString string) KeyCombo {
	if keyString == " " {
		return KeyCombo{Key: "space"}
	}

	fields := strings.Fields(keyString)
	if len(fields) == 0 {
		return KeyCombo{}
	}

	part := strings.ToLower(fields[0])
	if part == "+" {
		return KeyCombo{Key: "plus"}
	}
	// "ctrl++" names the plus key itself
	if strings.HasSuffix(part, "++") {
		part = strings.TrimSuffix(part, "+") + "plus"
	}

	var combo KeyCombo
	for _, token := range strings.Split(part, "+") {
		if token == "" {
			continue
		}
		switch modifierByName[token] {
		case modCtrl:
			combo.Ctrl = true
		case modShift:
			combo.Shift = true
		case modAlt:
			combo.Alt = true
		case modMeta:
			combo.Meta = true
		default:
			combo.Key = NormalizeKey(token)
		}
	}
	return combo
}

// SplitChord splits a binding key string into its prefix and second parts.
// isChord is false for single-combo bindings.
func SplitChord(keyString string) (prefix, second string, isChord bool) {
	fields := strings.Fields(keyString)
	switch len(fields) {
	case 0:
		return "", "", false
	case 1:
		return fields[0], "", false
	default:
		return fields[0], fields[1], true
	}
}

// IsChordKey reports whether a binding key string describes a two-part chord.
func IsChordKey(keyString string) bool {
	return strings.Contains(strings.TrimSpace(keyString), " ")
}

// IsZero reports whether the combo has no key and can never match.
func (c KeyCombo) IsZero() bool {
	return c.Key == ""
}

// HasModifiers reports whether any modifier is required.
func (c KeyCombo) HasModifiers() bool {
	return c.Ctrl || c.Shift || c.Alt || c.Meta
}

// String returns the canonical key string, e.g. "Ctrl+Shift+K".
func (c KeyCombo) String() string {
	parts := make([]string, 0, 5)
	if c.Ctrl {
		parts = append(parts, "Ctrl")
	}
	if c.Shift {
		parts = append(parts, "Shift")
	}
	if c.Alt {
		parts = append(parts, "Alt")
	}
	if c.Meta {
		parts = append(parts, "Meta")
	}
	if c.Key != "" {
		parts = append(parts, displayKey(c.Key))
	}
	return strings.Join(parts, "+")
}

func displayKey(key string) string {
	if name, ok := keyDisplayNames[key]; ok {
		return name
	}
	if len(key) == 1 {
		return strings.ToUpper(key)
	}
	return strings.ToUpper(key[:1]) + key[1:]
}
