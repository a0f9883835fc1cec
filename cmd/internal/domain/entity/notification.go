package entity

import "time"

// NotificationAutoClose is how long a toast stays on screen when nobody
// interacts with it.
const NotificationAutoClose = 5000 * time.Millisecond

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification is a transient, non-blocking message reporting the outcome of a
// submission. Both kinds share the same timing and interaction policy.
type Notification struct {
	Kind         NotificationKind
	Message      string
	AutoClose    time.Duration
	Closable     bool
	PauseOnHover bool
	Draggable    bool
}

func NewNotification(kind NotificationKind, message string) *Notification {
	return &Notification{
		Kind:         kind,
		Message:      message,
		AutoClose:    NotificationAutoClose,
		Closable:     true,
		PauseOnHover: true,
		Draggable:    true,
	}
}
