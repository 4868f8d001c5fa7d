// Package textops implements line-aware editing operations over a text
// value and its selection. Operations are pure: they take a State and
// return a new one. Offsets are byte offsets into the UTF-8 text.
package textops

// State is a snapshot of a text value and its selection.
type State struct {
	Text  string
	Start int
	End   int
}

// Status reports the outcome of an operation that may leave the text untouched.
type Status int

const (
	StatusApplied Status = iota
	StatusUnchanged
	StatusNoWord
	StatusNoOccurrence
	StatusTermAdopted
	StatusNoTrailingWhitespace
	StatusNothingToTransform
)

func (s Status) String() string {
	switch s {
	case StatusApplied:
		return "applied"
	case StatusUnchanged:
		return "unchanged"
	case StatusNoWord:
		return "no word at cursor"
	case StatusNoOccurrence:
		return "no more occurrences"
	case StatusTermAdopted:
		return "search term set"
	case StatusNoTrailingWhitespace:
		return "no trailing whitespace"
	case StatusNothingToTransform:
		return "nothing selected"
	default:
		return "unknown"
	}
}

// Collapsed reports whether the selection is a caret.
func (s State) Collapsed() bool {
	return s.Start == s.End
}

// Selected returns the selected text.
func (s State) Selected() string {
	n := s.Normalize()
	return n.Text[n.Start:n.End]
}

// Normalize clamps the selection into the text and orders it.
func (s State) Normalize() State {
	s.Start = clamp(s.Start, 0, len(s.Text))
	s.End = clamp(s.End, 0, len(s.Text))
	if s.Start > s.End {
		s.Start, s.End = s.End, s.Start
	}
	return s
}

// Caret returns a state with a collapsed selection at pos.
func Caret(text string, pos int) State {
	return State{Text: text, Start: pos, End: pos}.Normalize()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
