package textops

import "strings"

const (
	lineCommentMarker = "//"
	lineCommentPrefix = "// "
	blockCommentOpen  = "/*"
	blockCommentClose = "*/"
)

// CommentMode selects how ToggleLineComment treats the touched lines.
type CommentMode int

const (
	CommentToggle CommentMode = iota
	CommentAdd
	CommentRemove
)

// ToggleLineComment adds or removes "//" comments on every touched line.
// Toggle removes comments only when every non-blank line is commented.
// Blank lines are never commented.
func ToggleLineComment(st State, mode CommentMode) (State, Status) {
	st = st.Normalize()
	blockStart, blockEnd := TouchedLines(st.Text, st.Start, st.End)
	starts := lineStarts(st.Text, blockStart, blockEnd)

	remove := mode == CommentRemove
	if mode == CommentToggle {
		remove = allCommented(st.Text, starts)
	}

	var edits []edit
	for _, ls := range starts {
		line := CurrentLine(st.Text, ls)
		indent := LeadingWhitespace(line)
		body := line[len(indent):]
		at := ls + len(indent)

		if remove {
			switch {
			case strings.HasPrefix(body, lineCommentPrefix):
				edits = append(edits, edit{at: at, del: len(lineCommentPrefix)})
			case strings.HasPrefix(body, lineCommentMarker):
				edits = append(edits, edit{at: at, del: len(lineCommentMarker)})
			}
			continue
		}
		if body == "" {
			continue
		}
		edits = append(edits, edit{at: at, ins: lineCommentPrefix})
	}

	if len(edits) == 0 {
		return st, StatusUnchanged
	}
	return applyWithSelection(st, edits), StatusApplied
}

func allCommented(text string, starts []int) bool {
	seen := false
	for _, ls := range starts {
		body := strings.TrimLeft(CurrentLine(text, ls), " \t")
		if body == "" {
			continue
		}
		if !strings.HasPrefix(body, lineCommentMarker) {
			return false
		}
		seen = true
	}
	return seen
}

// ToggleBlockComment wraps the selection in "/* */" or unwraps it when the
// trimmed selection is already wrapped. A selection ending in a lone "*" is
// treated as wrapped too. An empty selection inserts "/**/" with the caret
// between the markers.
func ToggleBlockComment(st State) State {
	st = st.Normalize()
	if st.Collapsed() {
		text := st.Text[:st.Start] + blockCommentOpen + blockCommentClose + st.Text[st.End:]
		return Caret(text, st.Start+len(blockCommentOpen))
	}

	selected := st.Selected()
	replacement, ok := unwrapBlockComment(selected)
	if !ok {
		replacement = blockCommentOpen + selected + blockCommentClose
	}

	return State{
		Text:  st.Text[:st.Start] + replacement + st.Text[st.End:],
		Start: st.Start,
		End:   st.Start + len(replacement),
	}
}

func unwrapBlockComment(selected string) (string, bool) {
	trimmed := strings.TrimSpace(selected)
	lead := selected[:strings.Index(selected, trimmed)]
	trail := selected[len(lead)+len(trimmed):]

	if !strings.HasPrefix(trimmed, blockCommentOpen) {
		return "", false
	}
	switch {
	case len(trimmed) >= 4 && strings.HasSuffix(trimmed, blockCommentClose):
		return lead + trimmed[2:len(trimmed)-2] + trail, true
	case len(trimmed) >= 3 && strings.HasSuffix(trimmed, "*"):
		return lead + trimmed[2:len(trimmed)-1] + trail, true
	default:
		return "", false
	}
}
