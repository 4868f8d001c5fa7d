// Package cli wires the linekeys use cases to the command line.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/linekeys/internal/application/port"
	"github.com/bnema/linekeys/internal/application/usecase"
	"github.com/bnema/linekeys/internal/cli/styles"
	"github.com/bnema/linekeys/internal/domain/build"
	"github.com/bnema/linekeys/internal/domain/entity"
	"github.com/bnema/linekeys/internal/domain/repository"
	"github.com/bnema/linekeys/internal/infrastructure/clipboard"
	"github.com/bnema/linekeys/internal/infrastructure/config"
	"github.com/bnema/linekeys/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/linekeys/internal/infrastructure/xdg"
	"github.com/bnema/linekeys/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	Paths     port.XDGPaths

	db       *sql.DB
	Sites    repository.SiteOverrideRepository
	Settings *config.SettingsGateway

	// Use cases
	Bindings *usecase.ResolveBindingsUseCase

	// Context with logger
	ctx context.Context
}

// NewApp loads the config, opens the site override database and resolves
// the global binding table.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	})
	ctx := logging.WithContext(context.Background(), logger)

	db, err := sqlite.NewConnection(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	logger.Debug().Str("db_path", cfg.Database.Path).Msg("database connected")

	sites := sqlite.NewSiteOverrideRepository(db)
	settings := config.NewSettingsGateway(mgr, sites)
	bindings := usecase.NewResolveBindingsUseCase(settings)
	if _, err := bindings.Refresh(ctx, ""); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("resolve bindings: %w", err)
	}

	return &App{
		Config:   cfg,
		Manager:  mgr,
		Theme:    styles.NewTheme(),
		Paths:    xdg.New(),
		db:       db,
		Sites:    sites,
		Settings: settings,
		Bindings: bindings,
		ctx:      ctx,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.db != nil {
		return sqlite.Close(a.db)
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Platform returns the platform named by flag, falling back to the config.
func (a *App) Platform(flag string) (entity.Platform, error) {
	value := flag
	if value == "" {
		value = a.Config.Editor.Platform
	}
	p, err := entity.ParsePlatform(value)
	if err != nil {
		return "", err
	}
	return p.Resolve(), nil
}

// Clipboard returns the system clipboard, or an in-memory one when no
// clipboard tool is available.
func (a *App) Clipboard() port.Clipboard {
	cb := clipboard.New()
	if !cb.Available() {
		logging.FromContext(a.ctx).Warn().Msg("no system clipboard found, using an in-memory clipboard")
		return clipboard.NewMemory("")
	}
	logging.FromContext(a.ctx).Debug().Str("backend", cb.Backend()).Msg("clipboard ready")
	return cb
}

// WatchSites reports site rule changes, including those saved by other
// linekeys processes. Close the watcher when done.
func (a *App) WatchSites() (*sqlite.SiteWatcher, error) {
	return sqlite.NewSiteWatcher(a.ctx, a.Config.Database.Path, 0)
}

// NewEditor creates the editing engine with the configured feedback duration.
func (a *App) NewEditor(cb port.Clipboard, notifier port.Notification) *usecase.EditActionsUseCase {
	return usecase.NewEditActionsUseCase(cb, notifier, usecase.EditOptions{
		FeedbackDurationMs: a.Config.Editor.FeedbackDurationMs,
	})
}

// NewDispatcher creates a chord dispatcher over the current binding table.
func (a *App) NewDispatcher(
	platform entity.Platform,
	editable port.EditabilityChecker,
	notifier port.Notification,
	handler usecase.ActionHandler,
) *usecase.ChordDispatcher {
	d := usecase.NewChordDispatcher(a.Bindings, editable, notifier, handler, usecase.DispatcherOptions{
		Platform:           platform,
		ChordTimeout:       time.Duration(a.Config.Editor.ChordTimeoutMs) * time.Millisecond,
		FeedbackDurationMs: a.Config.Editor.FeedbackDurationMs,
	})
	d.SetEnabled(a.Bindings.Enabled())
	return d
}

// LogToFile sends logs to name under the state directory while a
// full-screen UI owns the terminal. Call the returned function to close it.
func (a *App) LogToFile(name string) (func(), error) {
	dir, err := a.Paths.StateDir()
	if err != nil {
		return nil, fmt.Errorf("state directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	logger := logging.New(logging.Config{
		Level:  logging.ParseLevel(a.Config.Logging.Level),
		Format: "json",
		Output: f,
	})
	a.ctx = logging.WithContext(a.ctx, logger)
	return func() { _ = f.Close() }, nil
}

// PathEntries lists the files linekeys reads and writes.
func (a *App) PathEntries() []styles.PathEntry {
	var entries []styles.PathEntry
	add := func(label string, fn func() (string, error)) {
		if path, err := fn(); err == nil {
			entries = append(entries, styles.PathEntry{Label: label, Path: path})
		}
	}
	add("Config", a.Paths.ConfigFile)
	dbPath := a.Config.Database.Path
	if a.db != nil {
		if version, err := sqlite.SchemaVersion(a.ctx, a.db); err == nil {
			dbPath += fmt.Sprintf(" (schema v%d)", version)
		}
	}
	entries = append(entries, styles.PathEntry{Label: "Database", Path: dbPath})
	add("State", a.Paths.StateDir)
	return entries
}

