// Package notify implements port.Notification for terminal hosts.
package notify

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/linekeys/internal/application/port"
	"github.com/bnema/linekeys/internal/logging"
)

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#909090"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ade80"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")).Bold(true)
)

var icons = map[port.NotificationType]string{
	port.NotificationInfo:    "·",
	port.NotificationSuccess: "✓",
	port.NotificationWarning: "!",
	port.NotificationError:   "✗",
}

// Style returns the lipgloss style used for a notification type.
func Style(t port.NotificationType) lipgloss.Style {
	switch t {
	case port.NotificationSuccess:
		return successStyle
	case port.NotificationWarning:
		return warningStyle
	case port.NotificationError:
		return errorStyle
	default:
		return infoStyle
	}
}

// Format renders a notification as one styled line.
func Format(message string, t port.NotificationType) string {
	return Style(t).Render(fmt.Sprintf("%s %s", icons[t], message))
}

// Writer prints notifications as styled lines. Durations are ignored since
// printed lines cannot be taken back.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
	seq atomic.Uint64
}

// NewWriter creates a notifier printing to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Show prints the message and logs it at debug level.
func (w *Writer) Show(ctx context.Context, surfaceID, message string, notifType port.NotificationType, durationMs int) port.NotificationID {
	id := port.NotificationID(fmt.Sprintf("n%d", w.seq.Add(1)))

	logging.FromContext(ctx).Debug().
		Str("surface", surfaceID).
		Str("type", notifType.String()).
		Int("duration_ms", durationMs).
		Msg(message)

	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintln(w.out, Format(message, notifType))
	return id
}

func (w *Writer) Dismiss(context.Context, port.NotificationID) {}

func (w *Writer) Clear(context.Context) {}

var _ port.Notification = (*Writer)(nil)
