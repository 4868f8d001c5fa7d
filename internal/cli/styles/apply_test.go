package styles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/linekeys/internal/cli/styles"
)

func TestApplyRenderer_RenderDiff(t *testing.T) {
	r := styles.NewApplyRenderer(styles.NewTheme())

	out := r.RenderDiff("one\ntwo\nthree\n", "one\nTWO\nthree\n")

	assert.Contains(t, out, "  one")
	assert.Contains(t, out, "- two")
	assert.Contains(t, out, "+ TWO")
	assert.Contains(t, out, "  three")
}

func TestApplyRenderer_RenderDiffNoChange(t *testing.T) {
	r := styles.NewApplyRenderer(styles.NewTheme())
	assert.Contains(t, r.RenderDiff("same", "same"), "(no changes)")
}

func TestApplyRenderer_RenderInline(t *testing.T) {
	r := styles.NewApplyRenderer(styles.NewTheme())

	out := r.RenderInline("hello world", "hello WORLD")

	assert.Contains(t, out, "hello ")
	assert.Contains(t, out, "world")
	assert.Contains(t, out, "WORLD")
}

func TestApplyRenderer_RenderSelection(t *testing.T) {
	r := styles.NewApplyRenderer(styles.NewTheme())
	assert.Equal(t, "caret at 3", r.RenderSelection(3, 3))
	assert.Equal(t, "selection 1-4", r.RenderSelection(1, 4))
}
