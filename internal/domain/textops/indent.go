package textops

import "strings"

// IndentUnit is inserted by Indent.
const IndentUnit = "\t"

// outdentUnits is the removal priority for Outdent. Mixed leading whitespace
// is resolved by taking the first unit that prefixes the line.
var outdentUnits = []string{"\t", "    ", "  ", " "}

// Indent prepends IndentUnit to every touched line.
func Indent(st State) State {
	st = st.Normalize()
	blockStart, blockEnd := TouchedLines(st.Text, st.Start, st.End)

	starts := lineStarts(st.Text, blockStart, blockEnd)
	edits := make([]edit, 0, len(starts))
	for _, ls := range starts {
		edits = append(edits, edit{at: ls, ins: IndentUnit})
	}
	return applyWithSelection(st, edits)
}

// Outdent removes one indentation unit from every touched line.
// Positions inside removed whitespace clamp to the line start.
func Outdent(st State) State {
	st = st.Normalize()
	blockStart, blockEnd := TouchedLines(st.Text, st.Start, st.End)

	var edits []edit
	for _, ls := range lineStarts(st.Text, blockStart, blockEnd) {
		line := CurrentLine(st.Text, ls)
		for _, unit := range outdentUnits {
			if strings.HasPrefix(line, unit) {
				edits = append(edits, edit{at: ls, del: len(unit)})
				break
			}
		}
	}
	return applyWithSelection(st, edits)
}
