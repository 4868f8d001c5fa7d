// Package clipboard provides clipboard adapters: system tools (wl-clipboard,
// xclip, xsel) with a fallback to the platform clipboard, and an in-process
// clipboard.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/bnema/linekeys/internal/application/port"
	"github.com/bnema/linekeys/internal/logging"
)

// ErrUnavailable is returned when no clipboard backend could be found.
var ErrUnavailable = errors.New("no clipboard tool available (install wl-clipboard or xclip)")

// Adapter implements port.Clipboard using system clipboard tools.
// Uses wl-clipboard for Wayland and xclip/xsel for X11. Other platforms go
// through github.com/atotto/clipboard.
type Adapter struct {
	copyArgv  []string
	pasteArgv []string
	native    bool
}

// New creates a new clipboard adapter.
// Detects Wayland vs X11 and selects the appropriate clipboard tool.
func New() *Adapter {
	a := &Adapter{}

	if os.Getenv("WAYLAND_DISPLAY") != "" {
		if copyPath, err := exec.LookPath("wl-copy"); err == nil {
			if pastePath, err := exec.LookPath("wl-paste"); err == nil {
				a.copyArgv = []string{copyPath, "--type", "text/plain"}
				a.pasteArgv = []string{pastePath, "--no-newline"}
				return a
			}
		}
	}

	if os.Getenv("DISPLAY") != "" {
		if path, err := exec.LookPath("xclip"); err == nil {
			a.copyArgv = []string{path, "-selection", "clipboard"}
			a.pasteArgv = []string{path, "-selection", "clipboard", "-o"}
			return a
		}
		if path, err := exec.LookPath("xsel"); err == nil {
			a.copyArgv = []string{path, "--clipboard", "--input"}
			a.pasteArgv = []string{path, "--clipboard", "--output"}
			return a
		}
	}

	// macOS, Windows, or a Linux box where atotto finds a tool we did not.
	if runtime.GOOS != "linux" || !clipboard.Unsupported {
		a.native = true
	}
	return a
}

// NewCommandAdapter creates an adapter running the given commands. The copy
// command receives text on stdin; the paste command prints it on stdout.
func NewCommandAdapter(copyArgv, pasteArgv []string) *Adapter {
	return &Adapter{copyArgv: copyArgv, pasteArgv: pasteArgv}
}

// Available reports whether any backend was found.
func (a *Adapter) Available() bool {
	return a.native || (len(a.copyArgv) > 0 && len(a.pasteArgv) > 0)
}

// Backend names the backend in use, for diagnostics.
func (a *Adapter) Backend() string {
	switch {
	case len(a.copyArgv) > 0:
		return a.copyArgv[0]
	case a.native:
		return "native"
	default:
		return "none"
	}
}

// WriteText copies text to the clipboard.
func (a *Adapter) WriteText(ctx context.Context, text string) error {
	log := logging.FromContext(ctx)

	if a.native {
		if err := clipboard.WriteAll(text); err != nil {
			log.Error().Err(err).Msg("clipboard write failed")
			return fmt.Errorf("native clipboard write: %w", err)
		}
		log.Debug().Str("backend", "native").Int("len", len(text)).Msg("clipboard write success")
		return nil
	}

	if len(a.copyArgv) == 0 {
		log.Error().Err(ErrUnavailable).Msg("clipboard write failed")
		return ErrUnavailable
	}

	cmd := exec.CommandContext(ctx, a.copyArgv[0], a.copyArgv[1:]...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		log.Error().Err(err).Str("tool", a.copyArgv[0]).Msg("clipboard write failed")
		return fmt.Errorf("%s: %w", a.copyArgv[0], err)
	}

	log.Debug().Str("tool", a.copyArgv[0]).Int("len", len(text)).Msg("clipboard write success")
	return nil
}

// ReadText reads text from the clipboard.
func (a *Adapter) ReadText(ctx context.Context) (string, error) {
	log := logging.FromContext(ctx)

	if a.native {
		text, err := clipboard.ReadAll()
		if err != nil {
			log.Debug().Err(err).Msg("clipboard read failed")
			return "", fmt.Errorf("native clipboard read: %w", err)
		}
		return text, nil
	}

	if len(a.pasteArgv) == 0 {
		log.Error().Err(ErrUnavailable).Msg("clipboard read failed")
		return "", ErrUnavailable
	}

	out, err := exec.CommandContext(ctx, a.pasteArgv[0], a.pasteArgv[1:]...).Output()
	if err != nil {
		log.Debug().Err(err).Str("tool", a.pasteArgv[0]).Msg("clipboard read failed (may be empty)")
		return "", fmt.Errorf("%s: %w", a.pasteArgv[0], err)
	}

	log.Debug().Str("tool", a.pasteArgv[0]).Int("len", len(out)).Msg("clipboard read success")
	return string(out), nil
}

// Clear clears the clipboard contents.
func (a *Adapter) Clear(ctx context.Context) error {
	return a.WriteText(ctx, "")
}

// HasText returns true if the clipboard contains text data.
func (a *Adapter) HasText(ctx context.Context) (bool, error) {
	text, err := a.ReadText(ctx)
	if err != nil {
		// Empty clipboard often returns error, treat as no text
		return false, nil
	}
	return text != "", nil
}

var _ port.Clipboard = (*Adapter)(nil)
