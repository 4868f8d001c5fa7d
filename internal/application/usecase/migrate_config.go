package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/linekeys/internal/application/port"
	"github.com/bnema/linekeys/internal/logging"
)

// CheckConfigMigrationInput holds the input for checking config migration.
type CheckConfigMigrationInput struct{}

// CheckConfigMigrationOutput holds the result of the migration check.
type CheckConfigMigrationOutput struct {
	// NeedsMigration is true if there are missing keys or legacy entries.
	NeedsMigration bool
	// MissingKeys contains info about each missing key.
	MissingKeys []port.KeyInfo
	// LegacyBindings counts boolean-only binding entries.
	LegacyBindings int
	// ConfigFile is the path to the config file.
	ConfigFile string
}

// MigrateConfigInput holds the input for migrating config.
type MigrateConfigInput struct{}

// MigrateConfigOutput holds the result of the migration.
type MigrateConfigOutput struct {
	// ChangedKeys contains the keys that were added or rewritten.
	ChangedKeys []string
	// ConfigFile is the path to the config file.
	ConfigFile string
}

// MigrateConfigUseCase handles config migration operations.
type MigrateConfigUseCase struct {
	migrator port.ConfigMigrator
}

// NewMigrateConfigUseCase creates a new migrate config use case.
func NewMigrateConfigUseCase(migrator port.ConfigMigrator) *MigrateConfigUseCase {
	return &MigrateConfigUseCase{migrator: migrator}
}

// Check reports whether the user config needs migrating.
func (uc *MigrateConfigUseCase) Check(ctx context.Context, _ CheckConfigMigrationInput) (*CheckConfigMigrationOutput, error) {
	if uc == nil || uc.migrator == nil {
		return nil, fmt.Errorf("config migrator is nil")
	}
	log := logging.FromContext(ctx)

	result, err := uc.migrator.CheckMigration()
	if err != nil {
		log.Warn().Err(err).Msg("config migration check failed")
		return nil, err
	}

	if result == nil || (len(result.MissingKeys) == 0 && result.LegacyBindings == 0) {
		log.Debug().Msg("config is up to date, no migration needed")
		return &CheckConfigMigrationOutput{}, nil
	}

	keyInfos := make([]port.KeyInfo, 0, len(result.MissingKeys))
	for _, key := range result.MissingKeys {
		keyInfos = append(keyInfos, uc.migrator.GetKeyInfo(key))
	}

	log.Debug().
		Int("missing_keys", len(result.MissingKeys)).
		Int("legacy_bindings", result.LegacyBindings).
		Str("config_file", result.ConfigFile).
		Msg("config migration check completed")

	return &CheckConfigMigrationOutput{
		NeedsMigration: true,
		MissingKeys:    keyInfos,
		LegacyBindings: result.LegacyBindings,
		ConfigFile:     result.ConfigFile,
	}, nil
}

// Execute applies the migration when one is needed.
func (uc *MigrateConfigUseCase) Execute(ctx context.Context, _ MigrateConfigInput) (*MigrateConfigOutput, error) {
	if uc == nil || uc.migrator == nil {
		return nil, fmt.Errorf("config migrator is nil")
	}
	log := logging.FromContext(ctx)

	result, err := uc.migrator.CheckMigration()
	if err != nil {
		return nil, err
	}
	if result == nil || (len(result.MissingKeys) == 0 && result.LegacyBindings == 0) {
		log.Debug().Msg("no migration needed")
		return &MigrateConfigOutput{}, nil
	}

	changed, err := uc.migrator.Migrate()
	if err != nil {
		log.Error().Err(err).Msg("config migration failed")
		return nil, err
	}

	log.Info().
		Int("changed_keys", len(changed)).
		Str("config_file", result.ConfigFile).
		Msg("config migration completed")

	return &MigrateConfigOutput{
		ChangedKeys: changed,
		ConfigFile:  result.ConfigFile,
	}, nil
}
