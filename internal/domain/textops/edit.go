package textops

import "strings"

// edit replaces del bytes at offset at with ins. Edits passed to applyEdits
// must be sorted by offset and non-overlapping.
type edit struct {
	at  int
	del int
	ins string
}

func applyEdits(text string, edits []edit) string {
	var b strings.Builder
	b.Grow(len(text))
	prev := 0
	for _, e := range edits {
		b.WriteString(text[prev:e.at])
		b.WriteString(e.ins)
		prev = e.at + e.del
	}
	b.WriteString(text[prev:])
	return b.String()
}

// mapPos translates an offset in the original text to the edited text.
// Offsets at an insertion point move past the inserted text; offsets inside
// a deleted span collapse to its start.
func mapPos(p int, edits []edit) int {
	shift := 0
	for _, e := range edits {
		switch {
		case p >= e.at+e.del:
			shift += len(e.ins) - e.del
		case p > e.at:
			return e.at + shift
		default:
			return p + shift
		}
	}
	return p + shift
}

// applyWithSelection applies edits and maps the selection through them.
func applyWithSelection(st State, edits []edit) State {
	if len(edits) == 0 {
		return st
	}
	return State{
		Text:  applyEdits(st.Text, edits),
		Start: mapPos(st.Start, edits),
		End:   mapPos(st.End, edits),
	}
}
