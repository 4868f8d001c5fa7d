package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.Editor.Enabled)
	assert.Equal(t, "auto", cfg.Editor.Platform)
	assert.Equal(t, 1500, cfg.Editor.ChordTimeoutMs)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Bindings)
	require.NoError(t, validateConfig(cfg))
}
