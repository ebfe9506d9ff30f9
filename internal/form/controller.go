// Package form holds the draft state of the ticket-creation form:
// field setters, validation, completion tracking, draft recovery and
// the submission flow with its simulated network delay.
package form

import (
	"context"
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	"github.com/spec-kit/helpdesk-service/pkg/util/errorutil"
)

// Submitter creates a ticket from a completed draft.
type Submitter interface {
	CreateFromDraft(ctx context.Context, draft domain.Draft, requester, department string) (*domain.Ticket, error)
}

// Config bundles controller dependencies.
type Config struct {
	Store      repository.DraftStore
	SessionKey string
	Submitter  Submitter
	// Delay is the simulated network delay applied before a submit
	// completes.
	Delay      time.Duration
	Requester  string
	Department string
}

// Controller owns one ticket-creation session's draft. It is the sole
// writer of the draft store entry for that session.
type Controller struct {
	cfg   Config
	draft domain.Draft
}

// NewController builds a controller, restoring a previously saved
// draft as the starting state when one exists. Restored values are the
// baseline; a field keeps its restored value until set.
func NewController(ctx context.Context, cfg Config) (*Controller, error) {
	c := &Controller{cfg: cfg}
	if cfg.Store != nil {
		saved, err := cfg.Store.Load(ctx, cfg.SessionKey)
		if err != nil {
			return nil, err
		}
		if saved != nil {
			c.draft = *saved
		}
	}
	return c, nil
}

// Draft returns a snapshot of the current draft.
func (c *Controller) Draft() domain.Draft {
	return c.draft
}

// SetTitle updates the title and persists the draft snapshot.
func (c *Controller) SetTitle(ctx context.Context, title string) error {
	c.draft.Title = title
	return c.persist(ctx)
}

// SetDescription updates the description and persists the draft snapshot.
func (c *Controller) SetDescription(ctx context.Context, description string) error {
	c.draft.Description = description
	return c.persist(ctx)
}

// SetCategory updates the category.
func (c *Controller) SetCategory(category domain.TicketCategory) {
	c.draft.Category = category
}

// SetPriority updates the priority.
func (c *Controller) SetPriority(priority domain.TicketPriority) {
	c.draft.Priority = priority
}

// SetContactEmail updates the optional contact email.
func (c *Controller) SetContactEmail(email string) {
	c.draft.ContactEmail = email
}

// SetContactPhone updates the optional contact phone.
func (c *Controller) SetContactPhone(phone string) {
	c.draft.ContactPhone = phone
}

// Validate runs the field rules and returns a map of field name to
// error message. An empty map means the draft is valid.
func (c *Controller) Validate() map[string]string {
	return validateDraft(c.draft)
}

// CompletionPercent is the share of the four required fields (title,
// description, category, priority) that are non-empty, in [0,100].
// It is recomputed on every call rather than stored.
func (c *Controller) CompletionPercent() int {
	filled := 0
	if c.draft.Title != "" {
		filled++
	}
	if c.draft.Description != "" {
		filled++
	}
	if c.draft.Category != "" {
		filled++
	}
	if c.draft.Priority != "" {
		filled++
	}
	return filled * 100 / 4
}

// CanSubmit reports whether submission is enabled: all required
// fields filled and no validation errors.
func (c *Controller) CanSubmit() bool {
	return c.CompletionPercent() == 100 && len(c.Validate()) == 0
}

// Submit validates the draft, waits through the simulated network
// delay and creates the ticket. Cancelling ctx during the delay
// discards the submission without touching the draft or the store, so
// a view torn down mid-submit cannot observe a stale update. On
// success the saved draft is cleared.
func (c *Controller) Submit(ctx context.Context) (*domain.Ticket, error) {
	if errs := c.Validate(); len(errs) > 0 {
		details := make(map[string]any, len(errs))
		for field, msg := range errs {
			details[field] = msg
		}
		return nil, errorutil.NewValidationError("please fill in all required fields", details)
	}

	if c.cfg.Delay > 0 {
		timer := time.NewTimer(c.cfg.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	ticket, err := c.cfg.Submitter.CreateFromDraft(ctx, c.draft, c.cfg.Requester, c.cfg.Department)
	if err != nil {
		return nil, errorutil.NewSubmissionError("ticket submission failed", err)
	}

	if err := c.Clear(ctx); err != nil {
		return nil, err
	}
	return ticket, nil
}

// Clear resets the draft and deletes the saved snapshot.
func (c *Controller) Clear(ctx context.Context) error {
	c.draft = domain.Draft{}
	if c.cfg.Store == nil {
		return nil
	}
	return c.cfg.Store.Clear(ctx, c.cfg.SessionKey)
}

// persist saves the draft while it has content and removes the
// snapshot once title and description are both empty.
func (c *Controller) persist(ctx context.Context) error {
	if c.cfg.Store == nil {
		return nil
	}
	if !c.draft.HasContent() {
		return c.cfg.Store.Clear(ctx, c.cfg.SessionKey)
	}
	return c.cfg.Store.Save(ctx, c.cfg.SessionKey, c.draft)
}
