package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/linekeys/internal/application/port"
	"github.com/bnema/linekeys/internal/cli"
	"github.com/bnema/linekeys/internal/infrastructure/notify"
	"github.com/bnema/linekeys/internal/infrastructure/textbuffer"
	"github.com/bnema/linekeys/internal/logging"
)

var (
	pressFlags    editFlags
	pressHost     string
	pressPlatform string
)

var pressCmd = &cobra.Command{
	Use:   "press <keys>...",
	Short: "Replay key presses against a file or stdin",
	Long: `Replay key presses through the shortcut dispatcher, exactly as a page would
see them. Bound keys and chords run their action; plain keys type text.

Each argument may hold several space separated keys, so a chord can be
given as "ctrl+k ctrl+c" or as two arguments.`,
	Example: `  echo 'let x = 1' | linekeys press "ctrl+k ctrl+c"
  linekeys press alt+down alt+down -f list.txt -c 2:1 --diff
  linekeys press ctrl+d ctrl+d -f app.js --host github.com`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPress,
}

func init() {
	rootCmd.AddCommand(pressCmd)
	pressFlags.register(pressCmd)
	pressCmd.Flags().StringVar(&pressHost, "host", "", "resolve bindings as on this hostname or URL")
	pressCmd.Flags().StringVar(&pressPlatform, "platform", "", "keyboard conventions: auto, mac or other (default from config)")
}

func runPress(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()

	platform, err := app.Platform(pressPlatform)
	if err != nil {
		return err
	}
	events, err := cli.KeyEvents(args, platform)
	if err != nil {
		return err
	}
	host := cli.HostFromArg(pressHost)
	if host != "" {
		ctx = logging.WithHost(ctx, host)
	}
	if _, err := app.Bindings.Refresh(ctx, host); err != nil {
		return err
	}

	cb := pressFlags.clipboardFor(app)
	buf, before, err := pressFlags.buffer(cmd, cb, "press")
	if err != nil {
		return err
	}

	notifier := notify.NewWriter(cmd.ErrOrStderr())
	editor := app.NewEditor(cb, notifier)
	dispatcher := app.NewDispatcher(platform, textbuffer.FocusCheck{}, notifier, editor.Handle)
	defer dispatcher.Reset()

	log := logging.FromContext(ctx)
	for _, ev := range events {
		handled, err := cli.Press(ctx, dispatcher, buf, ev)
		if err != nil {
			return fmt.Errorf("type %q: %w", ev.Key, err)
		}
		log.Debug().Str("key", ev.Key).Bool("handled", handled).Msg("replayed key")
	}
	if prefix, ok := dispatcher.PendingPrefix(); ok {
		notifier.Show(ctx, buf.SurfaceID(), fmt.Sprintf("%s was pressed; waiting for the second key of a chord", prefix), port.NotificationWarning, 0)
	}
	return pressFlags.finish(cmd, app, buf, before)
}
