package models

import "github.com/Renal37/order-dashboard/internal/utils"

type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
	NotificationWarning NotificationType = "warning"
	NotificationInfo    NotificationType = "info"
)

type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	OrderID   string           `json:"order_id,omitempty"`
	Event     string           `json:"event,omitempty"`
	Timestamp utils.Timestamp  `json:"timestamp"`
}

// SameEvent reports whether two notifications describe the same event, which
// is how duplicates are recognised.
func (n Notification) SameEvent(other Notification) bool {
	return n.Message == other.Message && n.Timestamp.Equal(other.Timestamp.Time)
}
