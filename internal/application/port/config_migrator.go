package port

// MigrationResult contains the result of a config migration check.
type MigrationResult struct {
	// MissingKeys contains the keys that exist in defaults but not in user config.
	MissingKeys []string
	// LegacyBindings counts boolean-only binding entries awaiting rewrite.
	LegacyBindings int
	// ConfigFile is the path to the user's config file.
	ConfigFile string
}

// KeyInfo contains metadata about a config key for display purposes.
type KeyInfo struct {
	// Key is the dot-notation key path (e.g., "editor.chord_timeout_ms").
	Key string
	// Type is the Go type of the value (e.g., "bool", "int", "string").
	Type string
	// DefaultValue is a string representation of the default value.
	DefaultValue string
}

// ConfigMigrator checks for and applies config migrations.
type ConfigMigrator interface {
	// CheckMigration checks if user config is missing default keys or still
	// carries legacy binding entries.
	// Returns nil if no migration is needed (config file doesn't exist or is complete).
	CheckMigration() (*MigrationResult, error)

	// Migrate adds missing default keys and rewrites legacy entries.
	// Returns the list of keys that were changed.
	Migrate() ([]string, error)

	// GetKeyInfo returns detailed information about a config key.
	GetKeyInfo(key string) KeyInfo
}
