package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/service"
)

// NotificationsHandler exposes the in-memory notification panel.
type NotificationsHandler struct {
	center *service.NotificationCenter
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(center *service.NotificationCenter) *NotificationsHandler {
	return &NotificationsHandler{center: center}
}

// List GET /notifications, newest first.
func (h *NotificationsHandler) List(c *fiber.Ctx) error {
	notifications := h.center.List()
	items := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, dto.NewNotificationResponse(n))
	}
	return c.JSON(fiber.Map{
		"data":         items,
		"unread_count": h.center.UnreadCount(),
	})
}

// Critical GET /notifications/critical. Unread critical entries only.
func (h *NotificationsHandler) Critical(c *fiber.Ctx) error {
	notifications := h.center.CriticalUnread()
	items := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, dto.NewNotificationResponse(n))
	}
	return c.JSON(fiber.Map{"data": items})
}

// MarkRead POST /notifications/:id/read. Unknown ids succeed without
// effect.
func (h *NotificationsHandler) MarkRead(c *fiber.Ctx) error {
	h.center.MarkRead(c.Params("id"))
	return c.JSON(fiber.Map{"data": fiber.Map{"unread_count": h.center.UnreadCount()}})
}

// MarkAllRead POST /notifications/read-all.
func (h *NotificationsHandler) MarkAllRead(c *fiber.Ctx) error {
	h.center.MarkAllRead()
	return c.JSON(fiber.Map{"data": fiber.Map{"unread_count": 0}})
}
