package textops

import "strings"

// CopyLine returns the clipboard payload for a copy. A collapsed selection
// copies the whole current line with a trailing newline, or the whole value
// for single-line inputs.
func CopyLine(st State, singleLine bool) string {
	st = st.Normalize()
	switch {
	case !st.Collapsed():
		return st.Selected()
	case singleLine:
		return st.Text
	default:
		return CurrentLine(st.Text, st.Start) + "\n"
	}
}

// CutLine removes what CopyLine would copy and returns the new state and payload.
func CutLine(st State, singleLine bool) (State, string) {
	st = st.Normalize()
	clip := CopyLine(st, singleLine)

	switch {
	case !st.Collapsed():
		return Caret(st.Text[:st.Start]+st.Text[st.End:], st.Start), clip
	case singleLine:
		return State{}, clip
	default:
		start, end := LineBoundaries(st.Text, st.Start)
		text, caret := removeLines(st.Text, start, end)
		return Caret(text, caret), clip
	}
}

// IsLinePayload reports whether payload was produced by a whole-line copy.
func IsLinePayload(payload string) bool {
	return strings.HasSuffix(payload, "\n")
}

// Paste inserts payload. A whole-line payload with a caret on a multi-line
// surface goes above the current line and the caret lands at the start of
// the line that was pushed down. Anything else replaces the selection.
func Paste(st State, payload string, singleLine bool) State {
	st = st.Normalize()

	if singleLine {
		payload = stripLineBreaks(payload)
	} else if IsLinePayload(payload) && st.Collapsed() {
		start, _ := LineBoundaries(st.Text, st.Start)
		return Caret(st.Text[:start]+payload+st.Text[start:], start+len(payload))
	}

	text := st.Text[:st.Start] + payload + st.Text[st.End:]
	return Caret(text, st.Start+len(payload))
}

func stripLineBreaks(s string) string {
	return strings.NewReplacer("\r\n", "", "\n", "", "\r", "").Replace(s)
}

// DeleteLine removes every touched line. Single-line inputs are cleared.
func DeleteLine(st State, singleLine bool) State {
	if singleLine {
		return State{}
	}
	st = st.Normalize()
	blockStart, blockEnd := TouchedLines(st.Text, st.Start, st.End)
	text, caret := removeLines(st.Text, blockStart, blockEnd)
	return Caret(text, caret)
}

// InsertLineBelow opens a line after the touched block, indented like the
// block's last line.
func InsertLineBelow(st State) State {
	st = st.Normalize()
	_, blockEnd := TouchedLines(st.Text, st.Start, st.End)
	indent := LeadingWhitespace(CurrentLine(st.Text, blockEnd))
	text := st.Text[:blockEnd] + "\n" + indent + st.Text[blockEnd:]
	return Caret(text, blockEnd+1+len(indent))
}

// InsertLineAbove opens a line before the touched block, indented like the
// block's first line.
func InsertLineAbove(st State) State {
	st = st.Normalize()
	blockStart, _ := TouchedLines(st.Text, st.Start, st.End)
	indent := LeadingWhitespace(CurrentLine(st.Text, blockStart))
	text := st.Text[:blockStart] + indent + "\n" + st.Text[blockStart:]
	return Caret(text, blockStart+len(indent))
}
