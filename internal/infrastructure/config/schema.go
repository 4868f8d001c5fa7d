package config

import (
	"strings"

	"github.com/bnema/linekeys/internal/domain/entity"
)

// Config represents the complete configuration for linekeys.
type Config struct {
	// Editor controls dispatching and feedback.
	Editor   EditorConfig   `mapstructure:"editor" toml:"editor" json:"editor" jsonschema:"description=Shortcut dispatching and feedback"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging" json:"logging"`
	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database"`
	// Bindings holds global overrides keyed by action ID. Actions missing
	// here keep their default key and enabled flag.
	Bindings map[string]BindingEntry `mapstructure:"bindings" toml:"bindings,omitempty" json:"bindings,omitempty" jsonschema:"description=Global binding overrides keyed by action ID"`
}

// EditorConfig controls how key events are turned into editing actions.
type EditorConfig struct {
	// Enabled is the global on/off switch.
	Enabled bool `mapstructure:"enabled" toml:"enabled" json:"enabled" jsonschema:"default=true"`
	// Platform selects modifier conventions (auto, mac, other).
	Platform string `mapstructure:"platform" toml:"platform" json:"platform" jsonschema:"enum=auto,enum=mac,enum=other,default=auto"`
	// ChordTimeoutMs is how long a chord prefix waits for its second key.
	ChordTimeoutMs int `mapstructure:"chord_timeout_ms" toml:"chord_timeout_ms" json:"chord_timeout_ms" jsonschema:"minimum=100,maximum=10000,default=1500"`
	// FeedbackDurationMs is how long action feedback stays visible.
	FeedbackDurationMs int `mapstructure:"feedback_duration_ms" toml:"feedback_duration_ms" json:"feedback_duration_ms" jsonschema:"minimum=0,maximum=30000,default=2000"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
}

// DatabaseConfig holds the location of the site override store.
type DatabaseConfig struct {
	// Path defaults to $XDG_DATA_HOME/linekeys/linekeys.sqlite when empty.
	Path string `mapstructure:"path" toml:"path" json:"path"`
}

// BindingEntry is one global binding override as written in config.toml:
//
//	[bindings.cut-line]
//	key = "Ctrl+Shift+X"
//	enabled = true
//	is_custom = true
//	is_now_chord = false
type BindingEntry struct {
	Key     *string `mapstructure:"key" toml:"key,omitempty" json:"key,omitempty"`
	Enabled *bool   `mapstructure:"enabled" toml:"enabled,omitempty" json:"enabled,omitempty"`
	// IsCustom marks a key chosen by the user rather than copied from defaults.
	IsCustom bool `mapstructure:"is_custom" toml:"is_custom" json:"is_custom"`
	// IsNowChord records whether the key is a two-part chord.
	IsNowChord bool `mapstructure:"is_now_chord" toml:"is_now_chord" json:"is_now_chord"`
}

// Override converts the entry to a domain override. A key equal to the
// default is dropped unless the user marked it custom, so entries written by
// legacy migration keep following the default.
func (e BindingEntry) Override(cfg entity.ActionConfig) entity.BindingOverride {
	override := entity.BindingOverride{Enabled: e.Enabled}
	if e.Key == nil {
		return override
	}
	key := canonicalKey(*e.Key)
	if e.IsCustom || key != canonicalKey(cfg.DefaultKey) {
		override.Key = entity.StringPtr(key)
	}
	return override
}

// apply merges override into the entry and refreshes the derived flags.
func (e BindingEntry) apply(cfg entity.ActionConfig, override entity.BindingOverride) BindingEntry {
	if override.Enabled != nil {
		e.Enabled = entity.BoolPtr(*override.Enabled)
	}
	if override.Key != nil {
		key := canonicalKey(*override.Key)
		e.Key = entity.StringPtr(key)
		e.IsCustom = key != canonicalKey(cfg.DefaultKey)
	}
	key := cfg.DefaultKey
	if e.Key != nil {
		key = *e.Key
	}
	e.IsNowChord = entity.IsChordKey(key)
	return e
}

// canonicalKey rewrites every combo of a key string in canonical form.
// Unparseable parts are kept as written so validation can report them.
func canonicalKey(keyString string) string {
	parts := strings.Fields(keyString)
	for i, part := range parts {
		if combo := entity.ParseCombo(part); !combo.IsZero() {
			parts[i] = combo.String()
		}
	}
	return strings.Join(parts, " ")
}
