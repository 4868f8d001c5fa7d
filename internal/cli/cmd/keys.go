package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/linekeys/internal/application/usecase"
	"github.com/bnema/linekeys/internal/cli"
	"github.com/bnema/linekeys/internal/cli/styles"
)

var (
	keysHost     string
	keysPlatform string
	keysSite     string
	keysAll      bool
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List and change shortcut bindings",
	Long: `List the bindings in effect and change them.

Changes apply to all sites unless --site names a hostname or a "*.suffix"
wildcard, in which case they only apply there.`,
}

var keysListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bindings, optionally as resolved for one site",
	Example: `  linekeys keys list
  linekeys keys list --host https://docs.google.com/document/d/1
  linekeys keys list --platform mac`,
	Args: cobra.NoArgs,
	RunE: runKeysList,
}

var keysCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Report bindings that compete for the same keys",
	Args:  cobra.NoArgs,
	RunE:  runKeysCheck,
}

var keysSetCmd = &cobra.Command{
	Use:   "set <action> <key>",
	Short: "Bind an action to a key or a two-key chord",
	Example: `  linekeys keys set delete-line ctrl+shift+d
  linekeys keys set trim-trailing-whitespace "ctrl+k ctrl+w"
  linekeys keys set cut-line ctrl+alt+x --site "*.atlassian.net"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runKeysSet,
}

var keysEnableCmd = &cobra.Command{
	Use:   "enable <action>",
	Short: "Enable an action",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return runKeysToggle(cmd, args, true) },
}

var keysDisableCmd = &cobra.Command{
	Use:   "disable <action>",
	Short: "Disable an action",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return runKeysToggle(cmd, args, false) },
}

var keysResetCmd = &cobra.Command{
	Use:   "reset [action]",
	Short: "Drop an override so the action inherits again",
	Long: `Drop the override of an action.

With --site and no action the whole site rule is removed. With --all every
global override is removed; site rules are kept.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runKeysReset,
}

func init() {
	rootCmd.AddCommand(keysCmd)
	keysCmd.AddCommand(keysListCmd, keysCheckCmd, keysSetCmd, keysEnableCmd, keysDisableCmd, keysResetCmd)

	for _, c := range []*cobra.Command{keysListCmd, keysCheckCmd} {
		c.Flags().StringVar(&keysHost, "host", "", "resolve bindings for this hostname or URL")
	}
	keysCmd.PersistentFlags().StringVar(&keysPlatform, "platform", "", "key names to show: auto, mac or other (default from config)")
	for _, c := range []*cobra.Command{keysSetCmd, keysEnableCmd, keysDisableCmd, keysResetCmd} {
		c.Flags().StringVar(&keysSite, "site", "", `apply to one site ("example.com" or "*.example.com")`)
	}
	keysResetCmd.Flags().BoolVar(&keysAll, "all", false, "reset every global override")
}

func keysRenderer(app *cli.App) (*styles.KeysRenderer, error) {
	platform, err := app.Platform(keysPlatform)
	if err != nil {
		return nil, err
	}
	return styles.NewKeysRenderer(app.Theme, platform), nil
}

func runKeysList(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	renderer, err := keysRenderer(app)
	if err != nil {
		return err
	}

	ctx := app.Ctx()
	host := cli.HostFromArg(keysHost)
	table, err := app.Bindings.Refresh(ctx, host)
	if err != nil {
		return err
	}
	snapshot, err := app.Settings.Load(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderer.RenderHeader(host, app.Bindings.Enabled()))
	fmt.Fprintln(out, renderer.RenderTable(cli.KeyRows(table, snapshot)))
	return nil
}

func runKeysCheck(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	renderer, err := keysRenderer(app)
	if err != nil {
		return err
	}

	conflicts, err := usecase.NewListConflictsUseCase(app.Settings).Execute(app.Ctx(), cli.HostFromArg(keysHost))
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderConflicts(conflicts))
	if len(conflicts) > 0 {
		return fmt.Errorf("%d conflicting bindings", len(conflicts))
	}
	return nil
}

func runKeysSet(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	renderer, err := keysRenderer(app)
	if err != nil {
		return err
	}
	action, err := cli.ParseActionID(args[0])
	if err != nil {
		return err
	}

	// "ctrl+k ctrl+w" may arrive quoted or as two arguments
	key := strings.Join(args[1:], " ")
	conflicts, err := usecase.NewSetBindingUseCase(app.Settings).Execute(app.Ctx(), usecase.SetBindingRequest{
		Action: action,
		Key:    key,
		Site:   keysSite,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, renderer.RenderSaved(action, cli.CanonicalKey(key), keysSite))
	if len(conflicts) > 0 {
		fmt.Fprint(out, renderer.RenderConflicts(conflicts))
	}
	return nil
}

func runKeysToggle(cmd *cobra.Command, args []string, enabled bool) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	renderer, err := keysRenderer(app)
	if err != nil {
		return err
	}
	action, err := cli.ParseActionID(args[0])
	if err != nil {
		return err
	}

	err = usecase.NewEnableBindingUseCase(app.Settings).Execute(app.Ctx(), usecase.EnableBindingRequest{
		Action:  action,
		Site:    keysSite,
		Enabled: enabled,
	})
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderToggled(action, enabled, keysSite))
	return nil
}

func runKeysReset(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	renderer, err := keysRenderer(app)
	if err != nil {
		return err
	}
	ctx := app.Ctx()
	out := cmd.OutOrStdout()

	if keysAll {
		if len(args) > 0 || keysSite != "" {
			return fmt.Errorf("--all cannot be combined with an action or --site")
		}
		if err := usecase.NewResetAllBindingsUseCase(app.Settings).Execute(ctx); err != nil {
			return err
		}
		fmt.Fprint(out, renderer.RenderReset("", ""))
		return nil
	}

	if len(args) == 0 && keysSite == "" {
		return fmt.Errorf("name an action, or use --site or --all")
	}

	req := usecase.ResetBindingRequest{Site: keysSite}
	if len(args) == 1 {
		action, err := cli.ParseActionID(args[0])
		if err != nil {
			return err
		}
		req.Action = action
	}
	if err := usecase.NewResetBindingUseCase(app.Settings).Execute(ctx, req); err != nil {
		return err
	}
	fmt.Fprint(out, renderer.RenderReset(req.Action, keysSite))
	return nil
}
