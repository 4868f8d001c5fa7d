// Package config provides configuration management for linekeys with Viper integration.
package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/linekeys/internal/domain/entity"
	"github.com/bnema/linekeys/internal/logging"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config      *Config
	viper       *viper.Viper
	transformer *LegacyBindingTransformer
	mu          sync.RWMutex
	callbacks   []func(*Config)
	watching    bool
	// skipNextReload is set by writes of our own so the watcher does not
	// reload a file whose content is already in memory.
	skipNextReload bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// LINEKEYS_EDITOR_CHORD_TIMEOUT_MS, LINEKEYS_DATABASE_PATH, ...
	v.SetEnvPrefix("LINEKEYS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "LINEKEYS_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind LINEKEYS_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "LINEKEYS_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind LINEKEYS_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:       v,
		transformer: NewLegacyBindingTransformer(),
		callbacks:   make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is created with defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.buildConfig()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			configFile := m.viper.ConfigFileUsed()
			if configFile == "" {
				configDir, _ := GetConfigDir()
				configFile = filepath.Join(configDir, configName)
			}
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
		}

		if createErr := m.createDefaultConfig(); createErr != nil {
			configDir, _ := GetConfigDir()
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				configDir,
				createErr,
			)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf(
				"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
				rereadErr,
			)
		}
	}
	return nil
}

// buildConfig decodes the merged viper settings into a validated Config.
// Must be called with m.mu held.
func (m *Manager) buildConfig() (*Config, error) {
	config, err := m.unmarshalConfig()
	if err != nil {
		return nil, err
	}
	if err := ensureDatabasePath(config); err != nil {
		return nil, err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// unmarshalConfig rewrites legacy binding entries before decoding, since
// `cut-line = false` cannot decode into a BindingEntry.
func (m *Manager) unmarshalConfig() (*Config, error) {
	settings := m.viper.AllSettings()
	if raw, ok := settings["bindings"].(map[string]any); ok {
		if n := m.transformer.TransformLegacyBindings(raw); n > 0 {
			log := logging.NewFromEnv()
			log.Debug().Int("entries", n).Msg("legacy binding entries migrated in memory")
		}
	}

	decoder := viper.New()
	if err := decoder.MergeConfigMap(settings); err != nil {
		return nil, fmt.Errorf("failed to merge settings: %w", err)
	}

	config := &Config{}
	if err := decoder.Unmarshal(config); err != nil {
		configFile := m.viper.ConfigFileUsed()
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			configFile,
			err,
		)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	if platform, err := entity.ParsePlatform(config.Editor.Platform); err == nil {
		config.Editor.Platform = string(platform)
	}
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "text" {
		config.Logging.Format = defaultLogFormat
	}

	if config.Bindings == nil {
		config.Bindings = make(map[string]BindingEntry)
	}
	for action, entry := range config.Bindings {
		if entry.Key != nil {
			entry.Key = entity.StringPtr(canonicalKey(*entry.Key))
			config.Bindings[action] = entry
		}
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	return cloneConfig(m.config)
}

// Save validates cfg and writes it to the config file.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	return m.saveLocked(cloneConfig(cfg))
}

// UpdateBinding applies fn to the global entry of action and saves.
func (m *Manager) UpdateBinding(action entity.ActionID, fn func(BindingEntry) BindingEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cfg := m.currentLocked()
	cfg.Bindings[string(action)] = fn(cfg.Bindings[string(action)])
	return m.saveLocked(cfg)
}

// DeleteBinding drops the global entry of action and saves.
// Deleting a missing entry is a no-op.
func (m *Manager) DeleteBinding(action entity.ActionID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cfg := m.currentLocked()
	if _, ok := cfg.Bindings[string(action)]; !ok {
		return nil
	}
	delete(cfg.Bindings, string(action))
	return m.saveLocked(cfg)
}

// SetEnabled flips the global on/off switch and saves.
func (m *Manager) SetEnabled(enabled bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cfg := m.currentLocked()
	cfg.Editor.Enabled = enabled
	return m.saveLocked(cfg)
}

func (m *Manager) currentLocked() *Config {
	if m.config == nil {
		return DefaultConfig()
	}
	return cloneConfig(m.config)
}

// saveLocked writes cfg and makes it current. Must be called with m.mu held
// for write.
func (m *Manager) saveLocked(cfg *Config) error {
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	configFile, err := m.configFilePath()
	if err != nil {
		return err
	}

	persisted := cloneConfig(cfg)
	if defaultPath, pathErr := GetDatabaseFile(); pathErr == nil && persisted.Database.Path == defaultPath {
		persisted.Database.Path = ""
	}
	if err := WriteConfigOrdered(persisted, configFile); err != nil {
		return err
	}

	if m.watching {
		m.skipNextReload = true
	}
	m.config = cfg
	return nil
}

func (m *Manager) configFilePath() (string, error) {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used, nil
	}
	configFile, err := GetConfigFile()
	if err != nil {
		return "", fmt.Errorf("failed to get config file path: %w", err)
	}
	return configFile, nil
}

// GetConfigFile returns the path to the config file in use.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}

	log := logging.NewFromEnv()
	log.Info().Str("file", configFile).Msg("created default configuration file")
	return nil
}

// setDefaults sets default values in viper. Bindings have no defaults: an
// absent entry follows the action catalog.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("editor.enabled", defaults.Editor.Enabled)
	m.viper.SetDefault("editor.platform", defaults.Editor.Platform)
	m.viper.SetDefault("editor.chord_timeout_ms", defaults.Editor.ChordTimeoutMs)
	m.viper.SetDefault("editor.feedback_duration_ms", defaults.Editor.FeedbackDurationMs)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.viper.SetDefault("database.path", defaults.Database.Path)
}

func cloneConfig(cfg *Config) *Config {
	out := *cfg
	out.Bindings = make(map[string]BindingEntry, len(cfg.Bindings))
	maps.Copy(out.Bindings, cfg.Bindings)
	return &out
}
