package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"github.com/bnema/linekeys/internal/application/port"
	"github.com/bnema/linekeys/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionEditor   = "Editor"
	SectionLogging  = "Logging"
	SectionDatabase = "Database"
	SectionBindings = "Bindings"
)

const schemaFileName = "config.schema.json"

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata, one key and
// one enabled flag per catalog action.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 64)
	keys = append(keys, p.getEditorKeys(defaults)...)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getDatabaseKeys()...)
	keys = append(keys, p.getBindingKeys()...)
	return keys
}

// JSONSchema returns the JSON schema of config.toml.
func (*SchemaProvider) JSONSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/linekeys/config.schema.json"
	schema.Title = "linekeys configuration"
	schema.Description = "Editing shortcut settings for linekeys"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// GenerateSchemaFile writes config.schema.json next to config.toml and
// returns its path.
func (p *SchemaProvider) GenerateSchemaFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}

	data, err := p.JSONSchema()
	if err != nil {
		return "", err
	}

	schemaFile := filepath.Join(configDir, schemaFileName)
	if err := os.MkdirAll(configDir, dirPerm); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return schemaFile, nil
}

func (*SchemaProvider) getEditorKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "editor.enabled",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.Editor.Enabled),
			Description: "Handle editing shortcuts at all",
			Section:     SectionEditor,
		},
		{
			Key:         "editor.platform",
			Type:        "string",
			Default:     defaults.Editor.Platform,
			Description: "Modifier conventions; mac maps Ctrl bindings to Cmd",
			Values:      []string{"auto", "mac", "other"},
			Section:     SectionEditor,
		},
		{
			Key:         "editor.chord_timeout_ms",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Editor.ChordTimeoutMs),
			Description: "How long a chord prefix waits for its second key",
			Range:       fmt.Sprintf("%d-%d", minChordTimeoutMs, maxChordTimeoutMs),
			Section:     SectionEditor,
		},
		{
			Key:         "editor.feedback_duration_ms",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Editor.FeedbackDurationMs),
			Description: "How long action feedback stays visible",
			Range:       fmt.Sprintf("0-%d", maxFeedbackDurationMs),
			Section:     SectionEditor,
		},
	}
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      []string{"console", "json"},
			Section:     SectionLogging,
		},
	}
}

func (*SchemaProvider) getDatabaseKeys() []entity.ConfigKeyInfo {
	dbPath := "$XDG_DATA_HOME/" + appName + "/" + databaseName
	if path, err := GetDatabaseFile(); err == nil {
		dbPath = path
	}

	return []entity.ConfigKeyInfo{
		{
			Key:         "database.path",
			Type:        "string",
			Default:     dbPath,
			Description: "Path to the SQLite database holding per-site overrides",
			Section:     SectionDatabase,
		},
	}
}

func (*SchemaProvider) getBindingKeys() []entity.ConfigKeyInfo {
	actions := entity.DefaultActions()
	keys := make([]entity.ConfigKeyInfo, 0, 2*len(actions))
	for _, action := range actions {
		prefix := "bindings." + string(action.ID)
		keys = append(keys,
			entity.ConfigKeyInfo{
				Key:         prefix + ".key",
				Type:        "string",
				Default:     action.DefaultKey,
				Description: action.Description,
				Section:     SectionBindings,
			},
			entity.ConfigKeyInfo{
				Key:         prefix + ".enabled",
				Type:        "bool",
				Default:     fmt.Sprintf("%t", action.DefaultEnabled),
				Description: "Enable " + action.Description,
				Section:     SectionBindings,
			},
		)
	}
	return keys
}

var _ port.ConfigSchemaProvider = (*SchemaProvider)(nil)
