package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/search"
	"github.com/spec-kit/helpdesk-service/internal/service"
)

const defaultAttendLimit = 5

// DashboardHandler serves the landing-screen aggregates.
type DashboardHandler struct {
	service *service.TicketService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(ticketService *service.TicketService) *DashboardHandler {
	return &DashboardHandler{service: ticketService}
}

// Summary GET /dashboard. Counts per status plus the urgency queue.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tickets, err := h.service.List(ctx)
	if err != nil {
		return err
	}

	counts := fiber.Map{
		"total":       len(tickets),
		"open":        0,
		"in_progress": 0,
		"resolved":    0,
		"closed":      0,
	}
	for _, t := range tickets {
		switch t.Status {
		case domain.TicketStatusOpen:
			counts["open"] = counts["open"].(int) + 1
		case domain.TicketStatusInProgress:
			counts["in_progress"] = counts["in_progress"].(int) + 1
		case domain.TicketStatusResolved:
			counts["resolved"] = counts["resolved"].(int) + 1
		case domain.TicketStatusClosed:
			counts["closed"] = counts["closed"].(int) + 1
		}
	}

	limit := defaultAttendLimit
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}
	next, err := h.service.NextToAttend(ctx, limit)
	if err != nil {
		return err
	}
	now := time.Now()
	queue := make([]dto.TicketSummary, 0, len(next))
	for i := range next {
		queue = append(queue, dto.NewTicketSummary(&next[i], now))
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"counts":         counts,
			"active":         len(search.Active(tickets)),
			"finished":       len(search.Finished(tickets)),
			"next_to_attend": queue,
		},
	})
}
