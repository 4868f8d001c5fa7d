package port

import "context"

// NotificationType indicates the visual style of a notification.
type NotificationType int

const (
	// NotificationInfo is for informational messages.
	NotificationInfo NotificationType = iota
	// NotificationSuccess is for success confirmations.
	NotificationSuccess
	// NotificationError is for error messages.
	NotificationError
	// NotificationWarning is for warning messages.
	NotificationWarning
)

// String returns a human-readable representation of the notification type.
func (t NotificationType) String() string {
	switch t {
	case NotificationInfo:
		return "info"
	case NotificationSuccess:
		return "success"
	case NotificationError:
		return "error"
	case NotificationWarning:
		return "warning"
	default:
		return "info"
	}
}

// NotificationID uniquely identifies a displayed notification.
type NotificationID string

// Notification shows short feedback near the surface an action ran on.
// Calls are fire-and-forget.
type Notification interface {
	// Show displays a notification anchored to surfaceID.
	// Duration is in milliseconds; pass 0 for default duration.
	Show(ctx context.Context, surfaceID, message string, notifType NotificationType, durationMs int) NotificationID

	// Dismiss removes a specific notification by ID.
	Dismiss(ctx context.Context, id NotificationID)

	// Clear removes all displayed notifications.
	Clear(ctx context.Context)
}
