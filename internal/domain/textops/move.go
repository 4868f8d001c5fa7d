package textops

// Direction selects up or down for move and duplicate.
type Direction int

const (
	Up Direction = iota
	Down
)

// MoveLines swaps the touched line block with its neighbour. The selection
// keeps its position within the moved lines. Moving past the first or last
// line reports StatusUnchanged.
func MoveLines(st State, dir Direction) (State, Status) {
	st = st.Normalize()
	text := st.Text
	blockStart, blockEnd := TouchedLines(text, st.Start, st.End)
	block := text[blockStart:blockEnd]

	if dir == Up {
		if blockStart == 0 {
			return st, StatusUnchanged
		}
		prevStart, _ := LineBoundaries(text, blockStart-1)
		prev := text[prevStart : blockStart-1]
		shift := len(prev) + 1
		return State{
			Text:  text[:prevStart] + block + "\n" + prev + text[blockEnd:],
			Start: st.Start - shift,
			End:   st.End - shift,
		}, StatusApplied
	}

	if blockEnd >= len(text) {
		return st, StatusUnchanged
	}
	_, nextEnd := LineBoundaries(text, blockEnd+1)
	next := text[blockEnd+1 : nextEnd]
	shift := len(next) + 1
	return State{
		Text:  text[:blockStart] + next + "\n" + block + text[nextEnd:],
		Start: st.Start + shift,
		End:   st.End + shift,
	}, StatusApplied
}

// DuplicateLines copies the touched line block above or below itself and
// leaves the selection on the new copy.
func DuplicateLines(st State, dir Direction) State {
	st = st.Normalize()
	text := st.Text
	blockStart, blockEnd := TouchedLines(text, st.Start, st.End)
	block := text[blockStart:blockEnd]

	if dir == Up {
		return State{
			Text:  text[:blockStart] + block + "\n" + text[blockStart:],
			Start: st.Start,
			End:   st.End,
		}
	}

	shift := len(block) + 1
	return State{
		Text:  text[:blockEnd] + "\n" + block + text[blockEnd:],
		Start: st.Start + shift,
		End:   st.End + shift,
	}
}
