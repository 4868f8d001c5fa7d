package textops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		pos       int
		wantStart int
		wantEnd   int
	}{
		{"first line", "ab\ncd", 1, 0, 2},
		{"on newline", "ab\ncd", 2, 0, 2},
		{"second line start", "ab\ncd", 3, 3, 5},
		{"end of text", "ab\ncd", 5, 3, 5},
		{"empty text", "", 0, 0, 0},
		{"empty last line", "a\n", 2, 2, 2},
		{"pos clamped", "abc", 10, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := LineBoundaries(tt.text, tt.pos)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestTouchedLines(t *testing.T) {
	// selection ending at the start of "b" does not touch it
	start, end := TouchedLines("a\nb\nc", 0, 2)
	assert.Equal(t, 0, start)
	assert.Equal(t, 1, end)

	start, end = TouchedLines("a\nb\nc", 0, 3)
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)

	start, end = TouchedLines("a\nb\nc", 4, 4)
	assert.Equal(t, 4, start)
	assert.Equal(t, 5, end)
}

func TestLeadingWhitespace(t *testing.T) {
	assert.Equal(t, "\t  ", LeadingWhitespace("\t  x "))
	assert.Equal(t, "", LeadingWhitespace("x"))
	assert.Equal(t, "  ", LeadingWhitespace("  "))
}

func TestState_Normalize(t *testing.T) {
	st := State{Text: "abc", Start: 5, End: -1}.Normalize()
	assert.Equal(t, 0, st.Start)
	assert.Equal(t, 3, st.End)
	assert.Equal(t, "abc", st.Selected())
}
