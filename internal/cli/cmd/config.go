package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bnema/linekeys/internal/application/usecase"
	"github.com/bnema/linekeys/internal/cli/styles"
	"github.com/bnema/linekeys/internal/infrastructure/config"
)

var (
	configYes        bool
	configSchemaJSON bool
	configSchemaFile bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View configuration status, migrate old config files and describe every setting.`,
}

var configStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show config file status and migration availability",
	Long:  `Display the files linekeys uses and check whether the config file needs migrating.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigStatus,
}

var configMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Add missing default settings and rewrite old binding entries",
	Long: `Compares your config file with the available defaults, adds missing settings
and rewrites on/off-only binding entries into tables.

Existing values are never changed and unknown keys are kept.`,
	Args: cobra.NoArgs,
	RunE: runConfigMigrate,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Describe every configuration key",
	Example: `  linekeys config schema
  linekeys config schema --json > schema.json
  linekeys config schema --write`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

var configToggleCmd = &cobra.Command{
	Use:       "toggle [on|off]",
	Short:     "Turn every editing shortcut on or off",
	Long:      `Flip the global switch, or set it with "on" or "off". Individual bindings keep their settings.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"on", "off"},
	RunE:      runConfigToggle,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configStatusCmd, configMigrateCmd, configSchemaCmd, configToggleCmd)
	configMigrateCmd.Flags().BoolVarP(&configYes, "yes", "y", false, "skip confirmation prompt")
	configSchemaCmd.Flags().BoolVar(&configSchemaJSON, "json", false, "print the JSON schema of config.toml")
	configSchemaCmd.Flags().BoolVar(&configSchemaFile, "write", false, "write config.schema.json next to config.toml")
}

// runConfigStatus shows the files in use and migration status.
func runConfigStatus(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	renderer := styles.NewConfigRenderer(app.Theme)
	uc := usecase.NewMigrateConfigUseCase(config.NewMigrator())

	configFile := app.Manager.GetConfigFile()
	if _, statErr := os.Stat(configFile); os.IsNotExist(statErr) {
		fmt.Fprintln(out, renderer.RenderNoConfigFile(configFile))
		return nil
	}

	fmt.Fprint(out, renderer.RenderPaths(app.PathEntries()))
	fmt.Fprint(out, renderer.RenderMasterSwitch(app.Config.Editor.Enabled))

	result, err := uc.Check(app.Ctx(), usecase.CheckConfigMigrationInput{})
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return nil
	}
	if !result.NeedsMigration {
		fmt.Fprintln(out, renderer.RenderUpToDate(configFile))
		return nil
	}

	fmt.Fprintln(out, renderer.RenderConfigInfo(configFile, len(result.MissingKeys), result.LegacyBindings))
	fmt.Fprintln(out, renderer.RenderMigrateHint())
	return nil
}

// runConfigMigrate runs the migration with optional confirmation.
func runConfigMigrate(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	renderer := styles.NewConfigRenderer(app.Theme)
	uc := usecase.NewMigrateConfigUseCase(config.NewMigrator())

	configFile := app.Manager.GetConfigFile()
	if _, statErr := os.Stat(configFile); os.IsNotExist(statErr) {
		fmt.Fprintln(out, renderer.RenderNoConfigFile(configFile))
		return nil
	}

	ctx := app.Ctx()
	result, err := uc.Check(ctx, usecase.CheckConfigMigrationInput{})
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return nil
	}
	if !result.NeedsMigration {
		fmt.Fprintln(out, renderer.RenderUpToDate(configFile))
		return nil
	}

	fmt.Fprintln(out, renderer.RenderConfigInfo(configFile, len(result.MissingKeys), result.LegacyBindings))
	fmt.Fprintln(out, renderer.RenderMissingKeys(result.MissingKeys))

	if configYes {
		return executeMigration(ctx, cmd, uc, renderer)
	}
	return runMigrateWithConfirmation(ctx, uc, renderer, app.Theme, migrationDetails(result))
}

// migrationDetails summarizes what the migration will change.
func migrationDetails(result *usecase.CheckConfigMigrationOutput) []string {
	var details []string
	if n := len(result.MissingKeys); n > 0 {
		details = append(details, fmt.Sprintf("add %d missing setting(s) with their defaults", n))
	}
	if result.LegacyBindings > 0 {
		details = append(details, fmt.Sprintf("rewrite %d on/off binding(s) as tables", result.LegacyBindings))
	}
	return append(details, "keep every value you already set")
}

// executeMigration performs the actual migration.
func executeMigration(ctx context.Context, cmd *cobra.Command, uc *usecase.MigrateConfigUseCase, renderer *styles.ConfigRenderer) error {
	result, err := uc.Execute(ctx, usecase.MigrateConfigInput{})
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderError(err))
		return nil
	}
	if len(result.ChangedKeys) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderMigrationSuccess(len(result.ChangedKeys), result.ConfigFile))
	}
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	provider := config.NewSchemaProvider()

	if configSchemaFile {
		path, err := provider.GenerateSchemaFile()
		if err != nil {
			return err
		}
		fmt.Fprint(out, styles.NewConfigRenderer(app.Theme).RenderSchemaWritten(path))
		return nil
	}

	schema, err := usecase.NewGetConfigSchemaUseCase(provider).Execute(app.Ctx(), usecase.GetConfigSchemaInput{JSON: configSchemaJSON})
	if err != nil {
		return err
	}
	if configSchemaJSON {
		_, err = fmt.Fprintln(out, string(schema.JSON))
		return err
	}
	fmt.Fprint(out, styles.NewConfigSchemaRenderer(app.Theme).Render(schema.Keys))
	return nil
}

func runConfigToggle(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	enabled := !app.Config.Editor.Enabled
	if len(args) == 1 {
		enabled = args[0] == "on"
	}
	if err := app.Manager.SetEnabled(enabled); err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), styles.NewConfigRenderer(app.Theme).RenderMasterSwitch(enabled))
	return nil
}

// migrateState represents the current state of the migrate confirmation.
type migrateState int

const (
	migrateStateConfirm migrateState = iota
	migrateStateRunning
	migrateStateDone
)

// migrateModel is the bubbletea model for the migrate confirmation.
type migrateModel struct {
	ctx      context.Context
	spinner  spinner.Model
	renderer *styles.ConfigRenderer
	confirm  styles.ConfirmModel
	state    migrateState
	uc       *usecase.MigrateConfigUseCase

	result   string
	err      error
	quitting bool
}

// migrateResultMsg is sent when the migration completes.
type migrateResultMsg struct {
	output *usecase.MigrateConfigOutput
	err    error
}

func newMigrateModel(
	ctx context.Context,
	renderer *styles.ConfigRenderer,
	theme *styles.Theme,
	uc *usecase.MigrateConfigUseCase,
	details []string,
) migrateModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	return migrateModel{
		ctx:      ctx,
		spinner:  s,
		renderer: renderer,
		confirm:  styles.NewConfirm(theme, "Update the config file?", details...),
		state:    migrateStateConfirm,
		uc:       uc,
	}
}

func (m migrateModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m migrateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case migrateResultMsg:
		m.state = migrateStateDone
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		if len(msg.output.ChangedKeys) > 0 {
			m.result = m.renderer.RenderMigrationSuccess(len(msg.output.ChangedKeys), msg.output.ConfigFile)
		}
		return m, tea.Quit
	}

	if m.state == migrateStateConfirm {
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)

		if m.confirm.Done() {
			if m.confirm.Result() {
				m.state = migrateStateRunning
				return m, m.runMigration()
			}
			m.quitting = true
			return m, tea.Quit
		}
		return m, cmd
	}

	return m, nil
}

func (m migrateModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.err != nil:
		return m.renderer.RenderError(m.err)
	case m.state == migrateStateDone:
		return m.result
	case m.state == migrateStateRunning:
		return fmt.Sprintf("\n  %s Migrating...\n", m.spinner.View())
	}
	return m.confirm.View()
}

func (m migrateModel) runMigration() tea.Cmd {
	return func() tea.Msg {
		result, err := m.uc.Execute(m.ctx, usecase.MigrateConfigInput{})
		return migrateResultMsg{output: result, err: err}
	}
}

// runMigrateWithConfirmation runs the migrate with an interactive confirmation dialog.
func runMigrateWithConfirmation(
	ctx context.Context,
	uc *usecase.MigrateConfigUseCase,
	renderer *styles.ConfigRenderer,
	theme *styles.Theme,
	details []string,
) error {
	p := tea.NewProgram(newMigrateModel(ctx, renderer, theme, uc, details))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
