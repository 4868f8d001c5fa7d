package textops

import "strings"

// SearchCursor remembers the term used by SelectWordOrNextOccurrence.
type SearchCursor struct {
	Term string
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// WordAt returns the [start, end) span of the word around pos.
// ok is false when pos touches no word character.
func WordAt(text string, pos int) (start, end int, ok bool) {
	pos = clamp(pos, 0, len(text))
	start, end = pos, pos
	for start > 0 && isWordByte(text[start-1]) {
		start--
	}
	for end < len(text) && isWordByte(text[end]) {
		end++
	}
	return start, end, start < end
}

// SelectWordOrNextOccurrence expands a caret to the word under it, then
// steps through later occurrences of that word on repeated calls. The
// search wraps to the top only for matches before the current selection.
// A selection that differs from the remembered term becomes the new term
// without moving.
func SelectWordOrNextOccurrence(st State, cur *SearchCursor) (State, Status) {
	st = st.Normalize()

	if st.Collapsed() {
		start, end, ok := WordAt(st.Text, st.Start)
		if !ok {
			return st, StatusNoWord
		}
		cur.Term = st.Text[start:end]
		return State{Text: st.Text, Start: start, End: end}, StatusApplied
	}

	selected := st.Selected()
	if cur.Term == "" || selected != cur.Term {
		cur.Term = selected
		return st, StatusTermAdopted
	}

	if idx := strings.Index(st.Text[st.End:], cur.Term); idx >= 0 {
		start := st.End + idx
		return State{Text: st.Text, Start: start, End: start + len(cur.Term)}, StatusApplied
	}
	if idx := strings.Index(st.Text, cur.Term); idx >= 0 && idx < st.Start {
		return State{Text: st.Text, Start: idx, End: idx + len(cur.Term)}, StatusApplied
	}
	return st, StatusNoOccurrence
}
