package cmd

import (
	"fmt"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/linekeys/internal/cli"
	"github.com/bnema/linekeys/internal/cli/model"
	"github.com/bnema/linekeys/internal/domain/entity"
	"github.com/bnema/linekeys/internal/infrastructure/notify"
	"github.com/bnema/linekeys/internal/infrastructure/textbuffer"
	"github.com/bnema/linekeys/internal/logging"
)

const playgroundSample = `// Try the shortcuts on this text.
function greet(name) {
  return "hello " + name;   
}

const names = ["ada", "grace", "linus"];
names.forEach(greet);
`

var (
	playgroundHost       string
	playgroundPlatform   string
	playgroundSingleLine bool
	playgroundWrite      bool
)

var playgroundCmd = &cobra.Command{
	Use:   "playground [file]",
	Short: "Try the shortcuts in an interactive text area",
	Long: `Open a full-screen text area wired to the shortcut dispatcher. Bindings
reload when config.toml changes, so edits made with 'linekeys keys' in
another terminal apply immediately.

Without a file a short sample is loaded. Changes are only saved with --write.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlayground,
}

func init() {
	rootCmd.AddCommand(playgroundCmd)
	playgroundCmd.Flags().StringVar(&playgroundHost, "host", "", "resolve bindings as on this hostname or URL")
	playgroundCmd.Flags().StringVar(&playgroundPlatform, "platform", "", "keyboard conventions: auto, mac or other (default from config)")
	playgroundCmd.Flags().BoolVar(&playgroundSingleLine, "single-line", false, "behave like a single-line input")
	playgroundCmd.Flags().BoolVarP(&playgroundWrite, "write", "w", false, "save the text back to the file on exit")
}

func runPlayground(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	if playgroundWrite && len(args) == 0 {
		return fmt.Errorf("--write needs a file")
	}

	closeLog, err := app.LogToFile("playground.log")
	if err != nil {
		return err
	}
	defer closeLog()
	ctx := logging.WithComponent(app.Ctx(), "playground")

	platform, err := app.Platform(playgroundPlatform)
	if err != nil {
		return err
	}
	host := cli.HostFromArg(playgroundHost)
	if host != "" {
		ctx = logging.WithHost(ctx, host)
	}
	if _, err := app.Bindings.Refresh(ctx, host); err != nil {
		return err
	}

	text := playgroundSample
	if len(args) == 1 {
		if text, err = cli.ReadInput(args[0], cmd.InOrStdin()); err != nil {
			return err
		}
	}

	cb := app.Clipboard()
	buf, err := cli.NewBuffer(text, cb, cli.BufferOptions{SingleLine: playgroundSingleLine, SurfaceID: "playground"})
	if err != nil {
		return err
	}

	// the program does not exist yet when the queue is built
	var program atomic.Pointer[tea.Program]
	notices := notify.NewQueue(func() {
		if p := program.Load(); p != nil {
			p.Send(model.RefreshMsg{})
		}
	})

	focus := textbuffer.NewFocusProvider()
	editor := app.NewEditor(cb, notices)
	dispatcher := app.NewDispatcher(platform, textbuffer.FocusCheck{Focus: focus}, notices, editor.Handle)

	if err := app.Manager.Watch(); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("config watch failed, bindings will not reload")
	}
	onBindings := func(*entity.EffectiveBindingTable) {
		if p := program.Load(); p != nil {
			p.Send(model.BindingsChangedMsg{Enabled: app.Bindings.Enabled()})
		}
	}
	app.Bindings.Watch(ctx, app.Manager, onBindings)
	if sites, err := app.WatchSites(); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("site database watch failed, site rules will not reload")
	} else {
		defer sites.Close()
		app.Bindings.Watch(ctx, sites, onBindings)
	}

	m := model.NewPlaygroundModel(ctx, app.Theme, model.PlaygroundConfig{
		Buffer:      buf,
		Focus:       focus,
		Dispatcher:  dispatcher,
		Notices:     notices,
		Platform:    platform,
		Host:        host,
		Enabled:     app.Bindings.Enabled(),
		SaveEnabled: app.Manager.SetEnabled,
		Editor:      editor,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithReportFocus(), tea.WithContext(ctx))
	program.Store(p)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("playground: %w", err)
	}

	if playgroundWrite {
		result := final.(model.PlaygroundModel).Text()
		if result != text {
			if err := cli.WriteFile(args[0], result); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Saved %s\n", args[0])
		}
	}
	return nil
}
