package domain

import "time"

// NotificationType classifies panel notifications.
type NotificationType string

const (
	NotificationNew       NotificationType = "NEW"
	NotificationUpdate    NotificationType = "UPDATE"
	NotificationCritical  NotificationType = "CRITICAL"
	NotificationCompleted NotificationType = "COMPLETED"
)

// Notification is an ephemeral in-session panel entry. It is never
// persisted.
type Notification struct {
	ID        string
	Title     string
	Message   string
	CreatedAt time.Time
	Read      bool
	Type      NotificationType
	Priority  TicketPriority
}
