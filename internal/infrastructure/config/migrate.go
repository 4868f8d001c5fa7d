package config

import (
	"bytes"
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/bnema/linekeys/internal/application/port"
)

// Migrator implements port.ConfigMigrator for comparing and merging config files.
type Migrator struct {
	// defaultViper holds a Viper instance with all defaults set.
	defaultViper *viper.Viper
	transformer  *LegacyBindingTransformer
	// configFile overrides the XDG config path; tests set it.
	configFile string
}

// NewMigrator creates a new Migrator instance.
func NewMigrator() *Migrator {
	v := viper.New()
	v.SetConfigType("toml")

	m := &Manager{viper: v}
	m.setDefaults()

	return &Migrator{
		defaultViper: v,
		transformer:  NewLegacyBindingTransformer(),
	}
}

// CheckMigration checks if the user config is missing default keys or still
// carries boolean-only binding entries. Returns nil if no migration is needed.
func (m *Migrator) CheckMigration() (*port.MigrationResult, error) {
	configFile, err := m.path()
	if err != nil {
		return nil, err
	}

	// A missing file is created with all defaults on first load.
	if _, statErr := os.Stat(configFile); os.IsNotExist(statErr) {
		return nil, nil
	}

	raw, err := readRawConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to parse user config: %w", err)
	}

	userKeys := make(map[string]any)
	m.flattenMapWithValues(raw, "", userKeys)

	missingKeys := m.findMissingKeys(m.getAllDefaultKeys(), userKeys)
	legacy := 0
	if bindings, ok := raw["bindings"].(map[string]any); ok {
		legacy = countLegacyBindings(bindings)
	}

	if len(missingKeys) == 0 && legacy == 0 {
		return nil, nil
	}

	return &port.MigrationResult{
		MissingKeys:    missingKeys,
		LegacyBindings: legacy,
		ConfigFile:     configFile,
	}, nil
}

// Migrate adds missing default keys and rewrites legacy binding entries.
// Unknown keys in the user file are preserved.
func (m *Migrator) Migrate() ([]string, error) {
	configFile, err := m.path()
	if err != nil {
		return nil, err
	}
	if _, statErr := os.Stat(configFile); os.IsNotExist(statErr) {
		return nil, nil
	}

	raw, err := readRawConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to parse user config: %w", err)
	}

	userKeys := make(map[string]any)
	m.flattenMapWithValues(raw, "", userKeys)

	var changed []string
	for _, key := range m.findMissingKeys(m.getAllDefaultKeys(), userKeys) {
		setNested(raw, strings.Split(key, "."), m.defaultViper.Get(key))
		changed = append(changed, key)
	}

	if bindings, ok := raw["bindings"].(map[string]any); ok {
		var legacy []string
		for action, value := range bindings {
			if _, isBool := value.(bool); isBool {
				legacy = append(legacy, action)
			}
		}
		m.transformer.TransformLegacyBindings(bindings)
		sort.Strings(legacy)
		for _, action := range legacy {
			if _, ok := bindings[action].(map[string]any); ok {
				changed = append(changed, "bindings."+action)
			}
		}
	}

	if len(changed) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(raw); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(configFile, []byte(sortTOMLSections(buf.String())), filePerm); err != nil {
		return nil, fmt.Errorf("failed to write config file: %w", err)
	}

	return changed, nil
}

// GetKeyInfo returns detailed information about a config key.
func (m *Migrator) GetKeyInfo(key string) port.KeyInfo {
	value := m.defaultViper.Get(key)
	if value == nil {
		return port.KeyInfo{
			Key:          key,
			Type:         "unknown",
			DefaultValue: "unknown",
		}
	}

	return port.KeyInfo{
		Key:          key,
		Type:         getTypeName(value),
		DefaultValue: formatValue(value),
	}
}

func (m *Migrator) path() (string, error) {
	if m.configFile != "" {
		return m.configFile, nil
	}
	configFile, err := GetConfigFile()
	if err != nil {
		return "", fmt.Errorf("failed to get config file path: %w", err)
	}
	return configFile, nil
}

func (m *Migrator) getAllDefaultKeys() []string {
	keys := m.defaultViper.AllKeys()

	filtered := make([]string, 0, len(keys))
	for _, key := range keys {
		// database.path is resolved at load time
		if key == "database.path" {
			continue
		}
		filtered = append(filtered, key)
	}

	sort.Strings(filtered)
	return filtered
}

func readRawConfig(configFile string) (map[string]any, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var rawConfig map[string]any
	if err := toml.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if rawConfig == nil {
		rawConfig = make(map[string]any)
	}
	return rawConfig, nil
}

// flattenMapWithValues flattens nested tables into dot-notation keys.
// The bindings table is user data and stays a single key.
func (m *Migrator) flattenMapWithValues(data map[string]any, prefix string, result map[string]any) {
	for k, v := range data {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		if nested, ok := v.(map[string]any); ok && key != "bindings" {
			m.flattenMapWithValues(nested, key, result)
			continue
		}
		result[key] = v
	}
}

func (*Migrator) findMissingKeys(defaultKeys []string, userKeys map[string]any) []string {
	var missing []string
	for _, key := range defaultKeys {
		if _, ok := userKeys[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

func setNested(data map[string]any, path []string, value any) {
	current := data
	for _, part := range path[:len(path)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[path[len(path)-1]] = value
}

func getTypeName(value any) string {
	if value == nil {
		return "unknown"
	}

	switch reflect.TypeOf(value).Kind() {
	case reflect.Bool:
		return "bool"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "int"
	case reflect.Float32, reflect.Float64:
		return "float"
	case reflect.String:
		return "string"
	case reflect.Map:
		return "map"
	default:
		return reflect.TypeOf(value).String()
	}
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		if v == "" {
			return `""`
		}
		return fmt.Sprintf("%q", v)
	case map[string]any:
		if len(v) == 0 {
			return "{}"
		}
		return fmt.Sprintf("{%d entries}", len(v))
	default:
		return fmt.Sprintf("%v", v)
	}
}

var _ port.ConfigMigrator = (*Migrator)(nil)
