package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/linekeys/internal/cli"
	"github.com/bnema/linekeys/internal/infrastructure/notify"
)

var applyFlags editFlags

var applyCmd = &cobra.Command{
	Use:   "apply <action>",
	Short: "Run one editing action on a file or stdin",
	Long: `Run one editing action on text read from --file or stdin and print the
result. The caret and selection are given with --cursor and --select-end;
the final selection is reported on stderr.

Clipboard actions use a private clipboard unless --system-clipboard is set.`,
	Example: `  printf 'a\nb\nc\n' | linekeys apply move-line-down --cursor 1:1
  linekeys apply toggle-line-comment -f main.go -c 12:1 --select-end 14:1 --diff
  linekeys apply trim-trailing-whitespace -f notes.md --write`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyFlags.register(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	action, err := cli.ParseActionID(args[0])
	if err != nil {
		return err
	}

	cb := applyFlags.clipboardFor(app)
	buf, before, err := applyFlags.buffer(cmd, cb, "apply")
	if err != nil {
		return err
	}

	editor := app.NewEditor(cb, notify.NewWriter(cmd.ErrOrStderr()))
	if err := editor.Execute(app.Ctx(), buf, action); err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}
	return applyFlags.finish(cmd, app, buf, before)
}
