package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/form"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util/errorutil"
)

// DraftsHandler persists and restores creation-form drafts keyed by
// session.
type DraftsHandler struct {
	store repository.DraftStore
}

// NewDraftsHandler constructs handler.
func NewDraftsHandler(store repository.DraftStore) *DraftsHandler {
	return &DraftsHandler{store: store}
}

// Get GET /drafts. 404 when the session has no saved draft.
func (h *DraftsHandler) Get(c *fiber.Ctx) error {
	draft, err := h.store.Load(c.UserContext(), sessionKey(c))
	if err != nil {
		return err
	}
	if draft == nil {
		return apperrors.NewNotFound("draft", nil)
	}
	return c.JSON(fiber.Map{"data": draft})
}

// Save PUT /drafts. A draft with neither title nor description is
// discarded instead of stored, mirroring the form controller.
func (h *DraftsHandler) Save(c *fiber.Ctx) error {
	var req dto.SaveDraftRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	draft := domain.Draft{
		Title:        req.Title,
		Category:     domain.TicketCategory(req.Category),
		Priority:     domain.TicketPriority(req.Priority),
		Description:  req.Description,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	}
	ctx := c.UserContext()
	key := sessionKey(c)
	if !draft.HasContent() {
		if err := h.store.Clear(ctx, key); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": fiber.Map{"saved": false}})
	}
	if err := h.store.Save(ctx, key, draft); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"saved": true}})
}

// Delete DELETE /drafts.
func (h *DraftsHandler) Delete(c *fiber.Ctx) error {
	if err := h.store.Clear(c.UserContext(), sessionKey(c)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Validate POST /drafts/validate. Returns the field error map and the
// completion percentage for the submitted draft without storing it.
func (h *DraftsHandler) Validate(c *fiber.Ctx) error {
	var req dto.SaveDraftRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	controller, err := form.NewController(c.UserContext(), form.Config{})
	if err != nil {
		return err
	}
	ctx := c.UserContext()
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

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"errors":             controller.Validate(),
			"completion_percent": controller.CompletionPercent(),
			"can_submit":         controller.CanSubmit(),
		},
	})
}
