package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"

	"github.com/bnema/linekeys/internal/logging"
)

const migrationsDir = "migrations"

//go:embed migrations/*.sql
var embedMigrations embed.FS

// goose keeps its filesystem and dialect in package state; serialize every
// use so two connections opened at once do not interleave.
var gooseMu sync.Mutex

func configureGoose() error {
	goose.SetBaseFS(embedMigrations)
	// goose prints every applied file otherwise
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

// RunMigrations brings the site override schema up to date. Running it on
// a current database is a no-op.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	log := logging.FromContext(ctx)

	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := configureGoose(); err != nil {
		return err
	}

	// A fresh file has no goose table yet.
	before, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		log.Debug().Err(err).Msg("no schema version yet, starting from scratch")
		before = 0
	}

	if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	after, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to get db version after migration: %w", err)
	}

	if after == before {
		log.Debug().Int64("version", after).Msg("site override schema up to date")
		return nil
	}
	log.Info().
		Int64("from_version", before).
		Int64("to_version", after).
		Msg("site override schema migrated")
	return nil
}

// SchemaVersion returns the applied schema version of the site database.
func SchemaVersion(ctx context.Context, db *sql.DB) (int64, error) {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := configureGoose(); err != nil {
		return 0, err
	}
	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return version, nil
}
