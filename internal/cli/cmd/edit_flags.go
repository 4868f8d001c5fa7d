package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/linekeys/internal/application/port"
	"github.com/bnema/linekeys/internal/cli"
	"github.com/bnema/linekeys/internal/cli/styles"
	"github.com/bnema/linekeys/internal/infrastructure/clipboard"
	"github.com/bnema/linekeys/internal/infrastructure/textbuffer"
)

// editFlags are shared by the commands that edit a file or stdin once.
type editFlags struct {
	file       string
	cursor     string
	selectEnd  string
	singleLine bool
	diff       bool
	write      bool
	clipboard  string
	useSystem  bool
}

func (f *editFlags) register(c *cobra.Command) {
	c.Flags().StringVarP(&f.file, "file", "f", "", `text to edit ("-" or empty for stdin)`)
	c.Flags().StringVarP(&f.cursor, "cursor", "c", "", `caret as a byte offset or "line:col"`)
	c.Flags().StringVar(&f.selectEnd, "select-end", "", "selection end (default: collapsed at --cursor)")
	c.Flags().BoolVar(&f.singleLine, "single-line", false, "treat the text as a single-line input")
	c.Flags().BoolVarP(&f.diff, "diff", "d", false, "print a diff instead of the result")
	c.Flags().BoolVarP(&f.write, "write", "w", false, "write the result back to --file")
	c.Flags().StringVar(&f.clipboard, "clipboard", "", "start from a private clipboard holding this text")
	c.Flags().BoolVar(&f.useSystem, "system-clipboard", false, "use the system clipboard instead of a private one")
}

func (f *editFlags) validate() error {
	if f.write && (f.file == "" || f.file == cli.StdinPath) {
		return fmt.Errorf("--write needs --file")
	}
	if f.useSystem && f.clipboard != "" {
		return fmt.Errorf("--clipboard cannot be combined with --system-clipboard")
	}
	return nil
}

func (f *editFlags) clipboardFor(app *cli.App) port.Clipboard {
	if f.useSystem {
		return app.Clipboard()
	}
	return clipboard.NewMemory(f.clipboard)
}

func (f *editFlags) buffer(cmd *cobra.Command, cb port.Clipboard, surface string) (*textbuffer.NativeMemory, string, error) {
	if err := f.validate(); err != nil {
		return nil, "", err
	}
	text, err := cli.ReadInput(f.file, cmd.InOrStdin())
	if err != nil {
		return nil, "", err
	}
	buf, err := cli.NewBuffer(text, cb, cli.BufferOptions{
		Cursor:     f.cursor,
		SelectEnd:  f.selectEnd,
		SingleLine: f.singleLine,
		SurfaceID:  surface,
	})
	if err != nil {
		return nil, "", err
	}
	return buf, buf.Value(), nil
}

// finish prints or writes the edited text and reports the selection on stderr.
func (f *editFlags) finish(cmd *cobra.Command, app *cli.App, buf port.TextBuffer, before string) error {
	renderer := styles.NewApplyRenderer(app.Theme)
	after := buf.Value()
	start, end := buf.Selection()

	switch {
	case f.write:
		if after != before {
			if err := cli.WriteFile(f.file, after); err != nil {
				return err
			}
		}
		if f.diff {
			fmt.Fprint(cmd.OutOrStdout(), f.renderDiff(renderer, before, after))
		}
	case f.diff:
		fmt.Fprint(cmd.OutOrStdout(), f.renderDiff(renderer, before, after))
	default:
		if _, err := io.WriteString(cmd.OutOrStdout(), after); err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderSelection(start, end))
	return nil
}

// renderDiff shows single-line buffers as one marked-up line.
func (f *editFlags) renderDiff(renderer *styles.ApplyRenderer, before, after string) string {
	if f.singleLine {
		return renderer.RenderInline(before, after) + "\n"
	}
	return renderer.RenderDiff(before, after)
}
