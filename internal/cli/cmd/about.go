package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/linekeys/internal/cli/styles"
)

var aboutCmd = &cobra.Command{
	Use:     "about",
	Aliases: []string{"version"},
	Short:   "Show version, build information and file locations",
	RunE:    runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	renderer := styles.NewAboutRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(app.BuildInfo, app.PathEntries()))
	return nil
}
