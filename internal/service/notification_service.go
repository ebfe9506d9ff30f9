package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/events"
)

// NotificationCenter holds the in-session notification panel state.
// Entries only live in memory; nothing is persisted or delivered
// anywhere. The center is fed through the event dispatcher so it does
// not care whether events are pushed or polled.
type NotificationCenter struct {
	mu            sync.RWMutex
	notifications []domain.Notification
	dispatcher    events.Dispatcher
	logger        *zap.Logger
	now           func() time.Time
}

// NewNotificationCenter creates the center.
func NewNotificationCenter(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationCenter {
	return &NotificationCenter{
		dispatcher: dispatcher,
		logger:     logger,
		now:        time.Now,
	}
}

// RegisterHandlers subscribes the center to ticket lifecycle events.
func (n *NotificationCenter) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTicketCreated, n.handleTicketCreated)
	n.dispatcher.Subscribe(events.EventTicketStatusChanged, n.handleTicketStatusChanged)
	n.dispatcher.Subscribe(events.EventTicketPriorityChanged, n.handleTicketPriorityChanged)
	n.dispatcher.Subscribe(events.EventTicketCommentAdded, n.handleTicketCommentAdded)
}

// Add appends a notification to the panel.
func (n *NotificationCenter) Add(notification domain.Notification) {
	if notification.ID == "" {
		notification.ID = uuid.NewString()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = n.now()
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notifications = append(n.notifications, notification)
}

// List returns all notifications, newest first.
func (n *NotificationCenter) List() []domain.Notification {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]domain.Notification, 0, len(n.notifications))
	for i := len(n.notifications) - 1; i >= 0; i-- {
		out = append(out, n.notifications[i])
	}
	return out
}

// MarkRead flags a single notification as read. Unknown ids are a
// no-op.
func (n *NotificationCenter) MarkRead(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i := range n.notifications {
		if n.notifications[i].ID == id {
			n.notifications[i].Read = true
			return
		}
	}
}

// MarkAllRead flags every notification as read.
func (n *NotificationCenter) MarkAllRead() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i := range n.notifications {
		n.notifications[i].Read = true
	}
}

// UnreadCount returns the number of unread notifications.
func (n *NotificationCenter) UnreadCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	count := 0
	for _, notification := range n.notifications {
		if !notification.Read {
			count++
		}
	}
	return count
}

// CriticalUnread returns unread critical notifications, newest first.
func (n *NotificationCenter) CriticalUnread() []domain.Notification {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := []domain.Notification{}
	for i := len(n.notifications) - 1; i >= 0; i-- {
		notification := n.notifications[i]
		if !notification.Read && notification.Type == domain.NotificationCritical {
			out = append(out, notification)
		}
	}
	return out
}

func (n *NotificationCenter) handleTicketCreated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketCreatedPayload)
	if !ok {
		return nil
	}
	notificationType := domain.NotificationNew
	if payload.Priority == domain.TicketPriorityCritical {
		notificationType = domain.NotificationCritical
	}
	n.Add(domain.Notification{
		Title:    "New ticket created",
		Message:  fmt.Sprintf("Ticket %s was created by %s", event.TicketID, event.Actor),
		Type:     notificationType,
		Priority: payload.Priority,
	})
	n.logger.Info("notification: ticket created", zap.String("ticket_id", event.TicketID))
	return nil
}

func (n *NotificationCenter) handleTicketStatusChanged(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketStatusChangedPayload)
	if !ok {
		return nil
	}
	notificationType := domain.NotificationUpdate
	title := "Ticket updated"
	if payload.NewStatus == domain.TicketStatusResolved || payload.NewStatus == domain.TicketStatusClosed {
		notificationType = domain.NotificationCompleted
		title = "Ticket completed"
	}
	n.Add(domain.Notification{
		Title:   title,
		Message: fmt.Sprintf("Ticket %s status changed to %s", event.TicketID, domain.StatusBadge(payload.NewStatus).Label),
		Type:    notificationType,
	})
	n.logger.Info("notification: status changed", zap.String("ticket_id", event.TicketID))
	return nil
}

func (n *NotificationCenter) handleTicketPriorityChanged(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketPriorityChangedPayload)
	if !ok {
		return nil
	}
	n.Add(domain.Notification{
		Title:    "Ticket updated",
		Message:  fmt.Sprintf("Ticket %s priority changed to %s", event.TicketID, domain.PriorityBadge(payload.NewPriority).Label),
		Type:     domain.NotificationUpdate,
		Priority: payload.NewPriority,
	})
	return nil
}

func (n *NotificationCenter) handleTicketCommentAdded(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketCommentAddedPayload)
	if !ok {
		return nil
	}
	n.Add(domain.Notification{
		Title:   "New comment",
		Message: fmt.Sprintf("%s commented on ticket %s", payload.Author, event.TicketID),
		Type:    domain.NotificationUpdate,
	})
	return nil
}
