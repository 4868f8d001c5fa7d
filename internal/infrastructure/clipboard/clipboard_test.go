package clipboard

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileBackedAdapter(t *testing.T) *Adapter {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	store := filepath.Join(t.TempDir(), "clip")
	return NewCommandAdapter(
		[]string{"sh", "-c", `cat > "$0"`, store},
		[]string{"sh", "-c", `cat "$0"`, store},
	)
}

func TestCommandAdapter_RoundTrip(t *testing.T) {
	a := fileBackedAdapter(t)
	ctx := context.Background()

	require.NoError(t, a.WriteText(ctx, "line one\n"))

	text, err := a.ReadText(ctx)
	require.NoError(t, err)
	assert.Equal(t, "line one\n", text)

	has, err := a.HasText(ctx)
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, a.Clear(ctx))
	has, err = a.HasText(ctx)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestCommandAdapter_ReadFailureIsNotText(t *testing.T) {
	a := fileBackedAdapter(t)

	_, err := a.ReadText(context.Background())
	require.Error(t, err, "nothing written yet")

	has, err := a.HasText(context.Background())
	require.NoError(t, err)
	assert.False(t, has)
}

func TestAdapter_Unavailable(t *testing.T) {
	a := &Adapter{}

	assert.False(t, a.Available())
	assert.Equal(t, "none", a.Backend())
	assert.ErrorIs(t, a.WriteText(context.Background(), "x"), ErrUnavailable)

	_, err := a.ReadText(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory("seed")

	text, err := m.ReadText(ctx)
	require.NoError(t, err)
	assert.Equal(t, "seed", text)

	require.NoError(t, m.WriteText(ctx, "next"))
	text, _ = m.ReadText(ctx)
	assert.Equal(t, "next", text)

	m.Err = errors.New("locked")
	assert.EqualError(t, m.WriteText(ctx, "x"), "locked")
	_, err = m.HasText(ctx)
	assert.EqualError(t, err, "locked")
}
