package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/linekeys/internal/application/port"
)

const defaultDuration = 2 * time.Second

// Message is a notification held by a Queue.
type Message struct {
	ID        port.NotificationID
	SurfaceID string
	Text      string
	Type      port.NotificationType
	ExpiresAt time.Time
}

// Queue keeps notifications until they expire. Interactive hosts poll
// Active on each redraw.
type Queue struct {
	mu       sync.Mutex
	messages []Message
	seq      uint64
	now      func() time.Time
	onChange func()
}

// NewQueue creates an empty queue. onChange, if set, is called after every
// Show so the host can schedule a redraw.
func NewQueue(onChange func()) *Queue {
	return &Queue{now: time.Now, onChange: onChange}
}

// Show queues the message. A new message on a surface replaces the previous
// one, matching a toast anchored to its field.
func (q *Queue) Show(_ context.Context, surfaceID, message string, notifType port.NotificationType, durationMs int) port.NotificationID {
	d := time.Duration(durationMs) * time.Millisecond
	if d <= 0 {
		d = defaultDuration
	}

	q.mu.Lock()
	q.seq++
	id := port.NotificationID(fmt.Sprintf("q%d", q.seq))
	kept := q.messages[:0]
	for _, m := range q.messages {
		if m.SurfaceID != surfaceID {
			kept = append(kept, m)
		}
	}
	q.messages = append(kept, Message{
		ID:        id,
		SurfaceID: surfaceID,
		Text:      message,
		Type:      notifType,
		ExpiresAt: q.now().Add(d),
	})
	onChange := q.onChange
	q.mu.Unlock()

	if onChange != nil {
		onChange()
	}
	return id
}

// Dismiss removes a notification.
func (q *Queue) Dismiss(_ context.Context, id port.NotificationID) {
	q.mu.Lock()
	defer q.mu.Unlock()
	kept := q.messages[:0]
	for _, m := range q.messages {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	q.messages = kept
}

// Clear removes all notifications.
func (q *Queue) Clear(context.Context) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.messages = nil
}

// Active drops expired notifications and returns the rest, oldest first.
func (q *Queue) Active() []Message {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	kept := q.messages[:0]
	for _, m := range q.messages {
		if now.Before(m.ExpiresAt) {
			kept = append(kept, m)
		}
	}
	q.messages = kept
	return append([]Message(nil), kept...)
}

var _ port.Notification = (*Queue)(nil)
