package xdg

import (
	"github.com/bnema/linekeys/internal/application/port"
	"github.com/bnema/linekeys/internal/infrastructure/config"
)

// Adapter implements port.XDGPaths using the config package helpers.
type Adapter struct{}

// New creates a new XDG paths adapter.
func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) ConfigDir() (string, error) {
	return config.GetConfigDir()
}

func (a *Adapter) DataDir() (string, error) {
	return config.GetDataDir()
}

func (a *Adapter) StateDir() (string, error) {
	return config.GetStateDir()
}

func (a *Adapter) ConfigFile() (string, error) {
	return config.GetConfigFile()
}

func (a *Adapter) DatabaseFile() (string, error) {
	return config.GetDatabaseFile()
}

var _ port.XDGPaths = (*Adapter)(nil)
