package model

import (
	"unicode/utf8"

	"github.com/bnema/linekeys/internal/application/port"
	"github.com/bnema/linekeys/internal/domain/entity"
	"github.com/bnema/linekeys/internal/domain/textops"
)

// caret handles the navigation and deletion keys a text field provides on
// its own. anchor is the fixed end of a shift-extended selection.
type caret struct {
	anchor int
	hasAnc bool
}

// handle applies ev to buf. It reports false for keys it does not know.
func (c *caret) handle(buf port.TextBuffer, ev entity.KeyEvent) (bool, error) {
	if ev.Ctrl || ev.Alt || ev.Meta {
		return false, nil
	}
	text := buf.Value()
	start, end := buf.Selection()

	switch ev.Key {
	case "backspace":
		c.hasAnc = false
		if start == end {
			if start == 0 {
				return true, nil
			}
			_, size := utf8.DecodeLastRuneInString(text[:start])
			start -= size
		}
		return true, buf.ReplaceRange(port.Replacement{Start: start, End: end})
	case "delete":
		c.hasAnc = false
		if start == end {
			if end == len(text) {
				return true, nil
			}
			_, size := utf8.DecodeRuneInString(text[end:])
			end += size
		}
		return true, buf.ReplaceRange(port.Replacement{Start: start, End: end})
	}

	// the anchor only survives while the selection still ends on it
	anchored := c.hasAnc && (c.anchor == start || c.anchor == end)
	head := end
	if anchored && c.anchor == end {
		head = start
	}

	var next int
	switch ev.Key {
	case "arrowleft":
		if start != end && !ev.Shift {
			next = start
			break
		}
		next = head
		if head > 0 {
			_, size := utf8.DecodeLastRuneInString(text[:head])
			next = head - size
		}
	case "arrowright":
		if start != end && !ev.Shift {
			next = end
			break
		}
		next = head
		if head < len(text) {
			_, size := utf8.DecodeRuneInString(text[head:])
			next = head + size
		}
	case "arrowup", "arrowdown":
		next = verticalMove(text, head, ev.Key == "arrowup")
	case "home":
		next, _ = textops.LineBoundaries(text, head)
	case "end":
		_, next = textops.LineBoundaries(text, head)
	default:
		return false, nil
	}

	if !ev.Shift {
		c.hasAnc = false
		buf.SetSelection(next, next)
		return true, nil
	}
	if !anchored {
		c.anchor, c.hasAnc = start, true
	}
	buf.SetSelection(min(c.anchor, next), max(c.anchor, next))
	return true, nil
}

// verticalMove keeps the byte column when moving between lines, clamped to
// the target line length.
func verticalMove(text string, pos int, up bool) int {
	lineStart, lineEnd := textops.LineBoundaries(text, pos)
	col := pos - lineStart

	if up {
		if lineStart == 0 {
			return 0
		}
		prevStart, prevEnd := textops.LineBoundaries(text, lineStart-1)
		return min(prevStart+col, prevEnd)
	}
	if lineEnd >= len(text) {
		return len(text)
	}
	nextStart, nextEnd := textops.LineBoundaries(text, lineEnd+1)
	return min(nextStart+col, nextEnd)
}
