package textops

import (
	"strings"
	"unicode"
)

// CaseMode selects the transform applied by TransformCase.
type CaseMode int

const (
	CaseUpper CaseMode = iota
	CaseLower
	CaseTitle
)

// TransformCase rewrites the selected text and re-selects the result.
func TransformCase(st State, mode CaseMode) (State, Status) {
	st = st.Normalize()
	if st.Collapsed() {
		return st, StatusNothingToTransform
	}

	var replacement string
	switch mode {
	case CaseUpper:
		replacement = strings.ToUpper(st.Selected())
	case CaseLower:
		replacement = strings.ToLower(st.Selected())
	default:
		replacement = titleCase(st.Selected())
	}

	return State{
		Text:  st.Text[:st.Start] + replacement + st.Text[st.End:],
		Start: st.Start,
		End:   st.Start + len(replacement),
	}, StatusApplied
}

// titleCase capitalizes the first letter after the start, whitespace or '-'.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	boundary := true
	for _, r := range strings.ToLower(s) {
		if boundary {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		boundary = unicode.IsSpace(r) || r == '-'
	}
	return b.String()
}
