package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/linekeys/internal/application/port"
	"github.com/bnema/linekeys/internal/domain/entity"
	"github.com/bnema/linekeys/internal/infrastructure/textbuffer"
)

type stubHandler struct {
	consume map[string]bool
	seen    []entity.KeyEvent
}

func (s *stubHandler) HandleKeyEvent(_ context.Context, _ port.TextBuffer, ev entity.KeyEvent) bool {
	s.seen = append(s.seen, ev)
	return s.consume[ev.Key]
}

func TestTypedText(t *testing.T) {
	tests := []struct {
		name   string
		ev     entity.KeyEvent
		want   string
		wantOK bool
	}{
		{name: "letter", ev: entity.KeyEvent{Key: "a"}, want: "a", wantOK: true},
		{name: "shifted letter", ev: entity.KeyEvent{Key: "a", Shift: true}, want: "A", wantOK: true},
		{name: "enter", ev: entity.KeyEvent{Key: "Enter"}, want: "\n", wantOK: true},
		{name: "space", ev: entity.KeyEvent{Key: " "}, want: " ", wantOK: true},
		{name: "ctrl letter", ev: entity.KeyEvent{Key: "a", Ctrl: true}},
		{name: "meta letter", ev: entity.KeyEvent{Key: "a", Meta: true}},
		{name: "named key", ev: entity.KeyEvent{Key: "arrowup"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TypedText(tt.ev)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPress(t *testing.T) {
	ctx := context.Background()
	h := &stubHandler{consume: map[string]bool{"k": true}}
	buf := textbuffer.NewMemory("", textbuffer.WithSurfaceID("t"))

	handled, err := Press(ctx, h, buf, entity.KeyEvent{Key: "k", Ctrl: true})
	require.NoError(t, err)
	assert.True(t, handled)
	assert.Empty(t, buf.Value(), "consumed keys do not type")

	for _, key := range []string{"h", "i"} {
		handled, err = Press(ctx, h, buf, entity.KeyEvent{Key: key})
		require.NoError(t, err)
		assert.True(t, handled)
	}
	assert.Equal(t, "hi", buf.Value())

	handled, err = Press(ctx, h, buf, entity.KeyEvent{Key: "x", Alt: true})
	require.NoError(t, err)
	assert.False(t, handled)
	assert.Len(t, h.seen, 4)
}

func TestPress_SingleLineDropsEnter(t *testing.T) {
	buf := textbuffer.NewMemory("ab", textbuffer.WithSingleLine(), textbuffer.WithSelection(2, 2))

	handled, err := Press(context.Background(), &stubHandler{}, buf, entity.KeyEvent{Key: "Enter"})

	require.NoError(t, err)
	assert.False(t, handled)
	assert.Equal(t, "ab", buf.Value())
}

func TestPress_ReadOnly(t *testing.T) {
	buf := textbuffer.NewMemory("ab", textbuffer.WithReadOnly())

	handled, err := Press(context.Background(), &stubHandler{}, buf, entity.KeyEvent{Key: "c"})

	require.NoError(t, err)
	assert.False(t, handled)
	assert.Equal(t, "ab", buf.Value())
}
