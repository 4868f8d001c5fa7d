package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/linekeys/internal/application/usecase"
	"github.com/bnema/linekeys/internal/cli"
	"github.com/bnema/linekeys/internal/infrastructure/config"
)

var settingsOutput string

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Import and export binding overrides",
}

var settingsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import overrides from a JSON export",
	Long: `Import global overrides and site rules from a JSON document. Comments and
trailing commas are allowed, and on/off-only entries are converted.

Imported entries are merged into the existing settings. Use "-" to read stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsImport,
}

var settingsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export overrides as JSON",
	Args:  cobra.NoArgs,
	RunE:  runSettingsExport,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsImportCmd, settingsExportCmd)
	settingsExportCmd.Flags().StringVarP(&settingsOutput, "output", "o", "", "write to a file instead of stdout")
}

func runSettingsImport(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	data, err := cli.ReadInput(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}

	uc := usecase.NewImportSettingsUseCase(app.Settings, config.NewLegacyBindingTransformer())
	out, err := uc.Execute(app.Ctx(), usecase.ImportSettingsInput{Data: []byte(data)})
	if err != nil {
		return err
	}

	renderer, err := keysRenderer(app)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderImported(out.Global, out.Sites, out.Migrated, out.Skipped))
	return nil
}

func runSettingsExport(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	out, err := usecase.NewExportSettingsUseCase(app.Settings).Execute(app.Ctx())
	if err != nil {
		return err
	}

	if settingsOutput == "" {
		_, err = cmd.OutOrStdout().Write(out.Data)
		return err
	}
	if err := os.WriteFile(settingsOutput, out.Data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", settingsOutput, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d global overrides and %d site rules to %s\n", out.Global, out.Sites, settingsOutput)
	return nil
}
