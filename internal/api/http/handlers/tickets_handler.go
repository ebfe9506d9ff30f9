package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/config"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/form"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	"github.com/spec-kit/helpdesk-service/internal/search"
	"github.com/spec-kit/helpdesk-service/internal/service"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util/errorutil"
)

// Fallback identity while there is no authentication; the original
// screens run under a simulated session user.
const (
	defaultRequester  = "Admin User"
	defaultDepartment = "Information Technology"
)

// TicketsHandler manages ticket endpoints.
type TicketsHandler struct {
	service    *service.TicketService
	drafts     repository.DraftStore
	submission config.SubmissionConfig
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService, drafts repository.DraftStore, submission config.SubmissionConfig) *TicketsHandler {
	return &TicketsHandler{service: ticketService, drafts: drafts, submission: submission}
}

// ListTickets GET /tickets. Optional query dimensions are ANDed; an
// omitted dimension matches everything.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	criteria := parseCriteria(c)
	tickets, err := h.service.Search(c.UserContext(), criteria)
	if err != nil {
		return err
	}
	now := time.Now()
	items := make([]dto.TicketSummary, 0, len(tickets))
	for i := range tickets {
		items = append(items, dto.NewTicketSummary(&tickets[i], now))
	}
	return c.JSON(fiber.Map{"data": items, "total": len(items)})
}

// GetTicket GET /tickets/:id.
func (h *TicketsHandler) GetTicket(c *fiber.Ctx) error {
	ticket, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketDetail(ticket, time.Now())})
}

// CreateTicket POST /tickets. The request body runs through the form
// controller so the draft lifecycle (restore, validate, simulated
// submit delay, clear) matches the interactive flow.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	requester := req.Requester
	if requester == "" {
		requester = defaultRequester
	}
	department := req.Department
	if department == "" {
		department = defaultDepartment
	}

	ctx := c.UserContext()
	controller, err := form.NewController(ctx, form.Config{
		Store:      h.drafts,
		SessionKey: sessionKey(c),
		Submitter:  h.service,
		Delay:      h.submission.Delay(),
		Requester:  requester,
		Department: department,
	})
	if err != nil {
		return err
	}
	if err := controller.SetTitle(ctx, req.Title); err != nil {
		return err
	}
	if err := controller.SetDescription(ctx, req.Description); err != nil {
		return err
	}
	controller.SetCategory(domain.TicketCategory(req.Category))
	controller.SetPriority(domain.TicketPriority(req.Priority))
	controller.SetContactEmail(req.ContactEmail)
	controller.SetContactPhone(req.ContactPhone)

	ticket, err := controller.Submit(ctx)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewTicketDetail(ticket, time.Now())})
}

// UpdateTicket PATCH /tickets/:id.
func (h *TicketsHandler) UpdateTicket(c *fiber.Ctx) error {
	var req dto.UpdateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	ticket, err := h.service.UpdateDetails(c.UserContext(), c.Params("id"), req.Title, req.Description, domain.TicketCategory(req.Category))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketDetail(ticket, time.Now())})
}

// UpdateStatus PATCH /tickets/:id/status.
func (h *TicketsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	ticket, err := h.service.UpdateStatus(c.UserContext(), c.Params("id"), domain.TicketStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketDetail(ticket, time.Now())})
}

// UpdatePriority PATCH /tickets/:id/priority.
func (h *TicketsHandler) UpdatePriority(c *fiber.Ctx) error {
	var req dto.UpdatePriorityRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	ticket, err := h.service.UpdatePriority(c.UserContext(), c.Params("id"), domain.TicketPriority(req.Priority))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketDetail(ticket, time.Now())})
}

// AddComment POST /tickets/:id/comments.
func (h *TicketsHandler) AddComment(c *fiber.Ctx) error {
	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	author := req.Author
	if author == "" {
		author = defaultRequester
	}
	kind := domain.CommentAuthorKind(req.AuthorKind)
	if kind != domain.AuthorKindAgent {
		kind = domain.AuthorKindRequester
	}
	comment, err := h.service.AddComment(c.UserContext(), c.Params("id"), author, kind, req.Body)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.CommentResponse{
		ID:         comment.ID,
		Author:     comment.Author,
		AuthorKind: string(comment.AuthorKind),
		Body:       comment.Body,
		CreatedAt:  comment.CreatedAt,
	}})
}

// Suggestions POST /tickets/suggestions.
func (h *TicketsHandler) Suggestions(c *fiber.Ctx) error {
	var req dto.SuggestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	return c.JSON(fiber.Map{"data": service.Suggestions(req.Description)})
}

func sessionKey(c *fiber.Ctx) string {
	if key := strings.TrimSpace(c.Get("X-Session-Key")); key != "" {
		return key
	}
	return "default"
}

func parseCriteria(c *fiber.Ctx) search.Criteria {
	criteria := search.Criteria{Text: c.Query("q")}
	if v := c.Query("status"); v != "" && v != "all" {
		status := domain.TicketStatus(v)
		criteria.Status = &status
	}
	if v := c.Query("priority"); v != "" && v != "all" {
		priority := domain.TicketPriority(v)
		criteria.Priority = &priority
	}
	if v := c.Query("category"); v != "" && v != "all" {
		category := domain.TicketCategory(v)
		criteria.Category = &category
	}
	if v := c.Query("department"); v != "" && v != "all" {
		department := v
		criteria.Department = &department
	}
	return criteria
}
