package config

import (
	"github.com/fsnotify/fsnotify"

	"github.com/bnema/linekeys/internal/application/port"
	"github.com/bnema/linekeys/internal/logging"
)

// Watch starts watching the config file for changes and reloads automatically.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil // one viper watch per manager
	}

	m.viper.WatchConfig()
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log := logging.NewFromEnv()
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("fsnotify config change detected")

		// reload replaces m.config
		m.mu.Lock()

		// Our own write: memory is current, only viper needs to catch up.
		if m.skipNextReload {
			log.Debug().Msg("skipping reload (triggered by own Save)")
			m.skipNextReload = false
			if err := m.viper.ReadInConfig(); err != nil {
				log.Warn().Err(err).Msg("failed to sync viper config after Save")
				// m.config is still what Save wrote
			}
			m.notifyCallbacksLocked()
			return
		}

		log.Debug().Msg("reloading config from external change")
		if err := m.reload(); err != nil {
			// Keep the last good config; bindings stay as they were.
			log.Warn().Err(err).Msg("failed to reload config")
			m.mu.Unlock()
			return
		}
		m.notifyCallbacksLocked()
	})

	m.watching = true
	return nil
}

// notifyCallbacksLocked copies callbacks and config, releases lock, then notifies.
// Must be called with m.mu held for write. Releases the lock before calling callbacks.
func (m *Manager) notifyCallbacksLocked() {
	// Callbacks get a copy so they cannot race the next reload.
	config := cloneConfig(m.config)
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		callback(config)
	}
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// OnSettingsChange implements port.SettingsWatcher.
func (m *Manager) OnSettingsChange(fn func()) {
	if fn == nil {
		return
	}
	m.OnConfigChange(func(*Config) { fn() })
}

// reload reloads the configuration (internal method, must be called with lock held for write).
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}

	config, err := m.buildConfig()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}

var _ port.SettingsWatcher = (*Manager)(nil)
