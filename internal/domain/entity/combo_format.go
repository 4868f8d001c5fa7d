package entity

import "strings"

var macGlyphs = map[string]string{
	"ctrl":       "⌘",
	"control":    "⌘",
	"meta":       "⌘",
	"cmd":        "⌘",
	"command":    "⌘",
	"alt":        "⌥",
	"option":     "⌥",
	"shift":      "⇧",
	"enter":      "↵",
	"return":     "↵",
	"arrowup":    "↑",
	"arrowdown":  "↓",
	"arrowleft":  "←",
	"arrowright": "→",
	"up":         "↑",
	"down":       "↓",
	"left":       "←",
	"right":      "→",
}

var otherNames = map[string]string{
	"control":    "Ctrl",
	"ctrl":       "Ctrl",
	"meta":       "Win",
	"cmd":        "Win",
	"command":    "Win",
	"arrowup":    "Up",
	"arrowdown":  "Down",
	"arrowleft":  "Left",
	"arrowright": "Right",
}

// FormatKeyString renders a binding key string for display on the given platform.
// Mac output uses glyphs separated by spaces with chord parts joined by ", ";
// other platforms keep "+" and join chord parts with a space.
func FormatKeyString(keyString string, platform Platform) string {
	parts := strings.Fields(keyString)
	if len(parts) == 0 {
		return ""
	}

	mac := platform.IsMac()
	formatted := make([]string, 0, len(parts))
	for _, part := range parts {
		formatted = append(formatted, formatPart(part, mac))
	}

	if mac {
		return strings.Join(formatted, ", ")
	}
	return strings.Join(formatted, " ")
}

func formatPart(part string, mac bool) string {
	tokens := splitComboTokens(part)
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		lower := strings.ToLower(token)
		if mac {
			if glyph, ok := macGlyphs[lower]; ok {
				out = append(out, glyph)
				continue
			}
			out = append(out, token)
			continue
		}
		if name, ok := otherNames[lower]; ok {
			out = append(out, name)
			continue
		}
		out = append(out, token)
	}
	if mac {
		return strings.Join(out, " ")
	}
	return strings.Join(out, "+")
}

// splitComboTokens splits on "+" while keeping a trailing literal "+" key.
func splitComboTokens(part string) []string {
	if part == "+" {
		return []string{"+"}
	}
	trailingPlus := strings.HasSuffix(part, "++")
	if trailingPlus {
		part = strings.TrimSuffix(part, "++")
	}
	var tokens []string
	for _, t := range strings.Split(part, "+") {
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	if trailingPlus {
		tokens = append(tokens, "+")
	}
	return tokens
}
