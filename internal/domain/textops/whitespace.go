package textops

import (
	"strings"
	"unicode"
)

// TrimTrailingWhitespace strips Unicode whitespace at the end of the current
// line, or of every touched line when there is a selection. A selection keeps
// its start and its end shrinks by the number of bytes removed.
func TrimTrailingWhitespace(st State) (State, Status) {
	st = st.Normalize()

	var edits []edit
	if st.Collapsed() {
		ls, le := LineBoundaries(st.Text, st.Start)
		edits = trimEdit(st.Text, ls, le, edits)
	} else {
		blockStart, blockEnd := TouchedLines(st.Text, st.Start, st.End)
		for _, ls := range lineStarts(st.Text, blockStart, blockEnd) {
			_, le := LineBoundaries(st.Text, ls)
			edits = trimEdit(st.Text, ls, le, edits)
		}
	}

	if len(edits) == 0 {
		return st, StatusNoTrailingWhitespace
	}
	if st.Collapsed() {
		return applyWithSelection(st, edits), StatusApplied
	}

	removed := 0
	for _, e := range edits {
		removed += e.del
	}
	text := applyEdits(st.Text, edits)
	end := clamp(st.End-removed, 0, len(text))
	// start never passes end
	return State{Text: text, Start: min(st.Start, end), End: end}, StatusApplied
}

func trimEdit(text string, ls, le int, edits []edit) []edit {
	line := text[ls:le]
	trimmed := strings.TrimRightFunc(line, unicode.IsSpace)
	if removed := len(line) - len(trimmed); removed > 0 {
		edits = append(edits, edit{at: ls + len(trimmed), del: removed})
	}
	return edits
}
