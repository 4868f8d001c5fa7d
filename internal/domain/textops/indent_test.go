package textops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndent(t *testing.T) {
	got := Indent(State{Text: "a\nb", Start: 0, End: 3})
	assert.Equal(t, State{Text: "\ta\n\tb", Start: 1, End: 5}, got)

	got = Indent(Caret("  x", 2))
	assert.Equal(t, Caret("\t  x", 3), got)

	// the line after a selection ending at its start is left alone
	got = Indent(State{Text: "a\nb", Start: 0, End: 2})
	assert.Equal(t, State{Text: "\ta\nb", Start: 1, End: 3}, got)
}

func TestOutdent(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  State
	}{
		{"tab first", Caret("\t  x", 4), Caret("  x", 3)},
		{"four spaces", Caret("    x", 5), Caret("x", 1)},
		{"three spaces removes two", Caret("   x", 4), Caret(" x", 2)},
		{"single space", Caret(" x", 2), Caret("x", 1)},
		{"spaces before tab", Caret("  \tx", 4), Caret("\tx", 2)},
		{"nothing to remove", Caret("x", 1), Caret("x", 1)},
		{"caret inside removed indent clamps", Caret("    x", 2), Caret("x", 0)},
		{
			"multi-line",
			State{Text: "\ta\n    b\nc", Start: 1, End: 10},
			State{Text: "a\nb\nc", Start: 0, End: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Outdent(tt.state))
		})
	}
}

func TestIndentOutdentRoundTrip(t *testing.T) {
	states := []State{
		Caret("x", 0),
		Caret("  foo", 3),
		{Text: "a\n  b\n\tc", Start: 0, End: 8},
		{Text: "a\nb\nc", Start: 2, End: 4},
		{Text: "one\ntwo", Start: 1, End: 4},
	}

	for _, st := range states {
		assert.Equal(t, st, Outdent(Indent(st)), "%q", st.Text)
	}
}
