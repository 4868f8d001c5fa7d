package config

import "github.com/bnema/linekeys/internal/domain/entity"

// Default values
const (
	defaultChordTimeoutMs     = 1500
	defaultFeedbackDurationMs = 2000
	defaultLogLevel           = "info"
	defaultLogFormat          = "console"
)

// DefaultConfig returns the default configuration values for linekeys.
// Bindings start empty: every action follows the catalog defaults.
func DefaultConfig() *Config {
	return &Config{
		Editor: EditorConfig{
			Enabled:            true,
			Platform:           string(entity.PlatformAuto),
			ChordTimeoutMs:     defaultChordTimeoutMs,
			FeedbackDurationMs: defaultFeedbackDurationMs,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Database: DatabaseConfig{
			// Empty path means use XDG data directory
			Path: "",
		},
		Bindings: make(map[string]BindingEntry),
	}
}
