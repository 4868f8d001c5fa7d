package textops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleLineComment(t *testing.T) {
	st := State{Text: "a\n\n  b", Start: 0, End: 6}

	commented, status := ToggleLineComment(st, CommentToggle)
	require.Equal(t, StatusApplied, status)
	assert.Equal(t, "// a\n\n  // b", commented.Text)

	restored, status := ToggleLineComment(commented, CommentToggle)
	require.Equal(t, StatusApplied, status)
	assert.Equal(t, st, restored)
}

func TestToggleLineComment_Modes(t *testing.T) {
	tests := []struct {
		name       string
		state      State
		mode       CommentMode
		wantText   string
		wantStatus Status
	}{
		{"add on commented", Caret("// a", 0), CommentAdd, "// // a", StatusApplied},
		{"remove on plain", Caret("a", 0), CommentRemove, "a", StatusUnchanged},
		{"remove without space", Caret("  //a", 0), CommentRemove, "  a", StatusApplied},
		{"toggle mixed comments all", State{Text: "// a\nb", Start: 0, End: 6}, CommentToggle, "// // a\n// b", StatusApplied},
		{"blank lines only", State{Text: "\n  \n", Start: 0, End: 4}, CommentToggle, "\n  \n", StatusUnchanged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, status := ToggleLineComment(tt.state, tt.mode)
			assert.Equal(t, tt.wantText, got.Text)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestToggleLineComment_CaretFollowsText(t *testing.T) {
	got, _ := ToggleLineComment(Caret("  foo", 4), CommentToggle)
	assert.Equal(t, Caret("  // foo", 7), got)
}

func TestToggleBlockComment(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  State
	}{
		{"wrap", State{Text: "x = 1", Start: 4, End: 5}, State{Text: "x = /*1*/", Start: 4, End: 9}},
		{"unwrap", State{Text: "x = /*1*/", Start: 4, End: 9}, State{Text: "x = 1", Start: 4, End: 5}},
		{"empty selection", Caret("ab", 1), Caret("a/**/b", 3)},
		{
			"unwrap keeps surrounding whitespace",
			State{Text: "  /* hi */  ", Start: 0, End: 12},
			State{Text: "   hi   ", Start: 0, End: 8},
		},
		{"lenient trailing star", State{Text: "/*abc*", Start: 0, End: 6}, State{Text: "abc", Start: 0, End: 3}},
		{"empty comment unwraps", State{Text: "/**/", Start: 0, End: 4}, Caret("", 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToggleBlockComment(tt.state))
		})
	}
}
