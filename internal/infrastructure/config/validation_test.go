package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/linekeys/internal/domain/entity"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name:    "unknown platform",
			mutate:  func(c *Config) { c.Editor.Platform = "amiga" },
			wantErr: "editor.platform",
		},
		{
			name:    "chord timeout too small",
			mutate:  func(c *Config) { c.Editor.ChordTimeoutMs = 10 },
			wantErr: "editor.chord_timeout_ms",
		},
		{
			name:    "negative feedback duration",
			mutate:  func(c *Config) { c.Editor.FeedbackDurationMs = -1 },
			wantErr: "editor.feedback_duration_ms",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "logging.level",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
		{
			name: "unknown action",
			mutate: func(c *Config) {
				c.Bindings["make-coffee"] = BindingEntry{Enabled: entity.BoolPtr(false)}
			},
			wantErr: "bindings.make-coffee: unknown action",
		},
		{
			name: "empty key",
			mutate: func(c *Config) {
				c.Bindings["cut-line"] = BindingEntry{Key: entity.StringPtr("  ")}
			},
			wantErr: "bindings.cut-line.key must not be empty",
		},
		{
			name: "three part key",
			mutate: func(c *Config) {
				c.Bindings["cut-line"] = BindingEntry{Key: entity.StringPtr("Ctrl+K Ctrl+X Ctrl+Y")}
			},
			wantErr: "at most two parts",
		},
		{
			name: "modifier only",
			mutate: func(c *Config) {
				c.Bindings["cut-line"] = BindingEntry{Key: entity.StringPtr("Ctrl+")}
			},
			wantErr: "has no key",
		},
		{
			name: "valid chord",
			mutate: func(c *Config) {
				c.Bindings["trim-trailing-whitespace"] = BindingEntry{Key: entity.StringPtr("Ctrl+K Ctrl+W")}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfig_AggregatesErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Editor.Platform = "amiga"
	cfg.Logging.Level = "loud"

	err := validateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed:")
	assert.Contains(t, err.Error(), "editor.platform")
	assert.Contains(t, err.Error(), "logging.level")
}
