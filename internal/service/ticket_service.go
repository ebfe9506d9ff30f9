package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	"github.com/spec-kit/helpdesk-service/internal/search"
	"github.com/spec-kit/helpdesk-service/internal/sla"
	"github.com/spec-kit/helpdesk-service/pkg/util/errorutil"
)

// TicketService coordinates ticket workflows.
type TicketService struct {
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
	now        func() time.Time
}

// TicketDependencies bundles dependencies for the ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	Dispatcher events.Dispatcher
	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &TicketService{
		tickets:    deps.TicketRepo,
		dispatcher: deps.Dispatcher,
		now:        now,
	}
}

// CreateFromDraft turns a validated draft into a stored ticket. The
// protocol id and the due timestamp are both derived here, once; the
// due timestamp never changes afterwards even if priority does.
func (s *TicketService) CreateFromDraft(ctx context.Context, draft domain.Draft, requester, department string) (*domain.Ticket, error) {
	now := s.now()
	ticket := &domain.Ticket{
		ID:          generateProtocolID(now),
		Title:       strings.TrimSpace(draft.Title),
		Description: strings.TrimSpace(draft.Description),
		Status:      domain.TicketStatusOpen,
		Priority:    draft.Priority,
		Category:    draft.Category,
		Requester:   requester,
		Department:  department,
		CreatedAt:   now,
		UpdatedAt:   now,
		DueAt:       sla.DueAt(draft.Priority, now),
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		Actor:    requester,
		Payload: events.TicketCreatedPayload{
			Title:      ticket.Title,
			Priority:   ticket.Priority,
			Category:   ticket.Category,
			Department: ticket.Department,
		},
	})
	return ticket, nil
}

// List returns every ticket in original store order.
func (s *TicketService) List(ctx context.Context) ([]domain.Ticket, error) {
	return s.tickets.List(ctx)
}

// Search filters the collection through the shared engine, preserving
// store order.
func (s *TicketService) Search(ctx context.Context, criteria search.Criteria) ([]domain.Ticket, error) {
	tickets, err := s.tickets.List(ctx)
	if err != nil {
		return nil, err
	}
	return search.Apply(tickets, criteria), nil
}

// Get fetches a single ticket with its comment thread.
func (s *TicketService) Get(ctx context.Context, id string) (*domain.Ticket, error) {
	return s.tickets.GetByID(ctx, id)
}

// NextToAttend lists the unfinished tickets closest to their due
// timestamp.
func (s *TicketService) NextToAttend(ctx context.Context, limit int) ([]domain.Ticket, error) {
	tickets, err := s.tickets.List(ctx)
	if err != nil {
		return nil, err
	}
	return sla.NextToAttend(tickets, limit), nil
}

// AddComment appends a comment to a ticket thread and bumps the
// ticket's update timestamp. Comments are never edited or removed.
func (s *TicketService) AddComment(ctx context.Context, ticketID, author string, kind domain.CommentAuthorKind, body string) (*domain.Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, errorutil.NewValidationError("comment body required", map[string]any{"body": "comment body required"})
	}
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ID:         uuid.NewString(),
		TicketID:   ticket.ID,
		Author:     author,
		AuthorKind: kind,
		Body:       body,
		CreatedAt:  s.now(),
	}
	if err := s.tickets.AddComment(ctx, ticket.ID, comment); err != nil {
		return nil, err
	}
	ticket.UpdatedAt = comment.CreatedAt
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCommentAdded,
		TicketID: ticket.ID,
		Actor:    author,
		Payload: events.TicketCommentAddedPayload{
			CommentID:   comment.ID,
			Author:      comment.Author,
			AuthorKind:  comment.AuthorKind,
			BodyPreview: stringPreview(comment.Body, 120),
		},
	})
	return comment, nil
}

// UpdateStatus moves a ticket to a new status, maintaining the
// resolution timestamp.
func (s *TicketService) UpdateStatus(ctx context.Context, ticketID string, newStatus domain.TicketStatus) (*domain.Ticket, error) {
	if !domain.ValidStatus(newStatus) {
		return nil, errorutil.NewValidationError("invalid status", map[string]any{"status": "invalid status"})
	}
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	oldStatus := ticket.Status
	now := s.now()
	ticket.Status = newStatus
	ticket.UpdatedAt = now
	if ticket.IsFinished() {
		if ticket.ResolvedAt == nil {
			ticket.ResolvedAt = &now
		}
	} else {
		ticket.ResolvedAt = nil
	}
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketStatusChanged,
		TicketID: ticket.ID,
		Payload: events.TicketStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: newStatus,
		},
	})
	return ticket, nil
}

// UpdatePriority changes a ticket's priority. The due timestamp stays
// as derived at creation.
func (s *TicketService) UpdatePriority(ctx context.Context, ticketID string, newPriority domain.TicketPriority) (*domain.Ticket, error) {
	if !domain.ValidPriority(newPriority) {
		return nil, errorutil.NewValidationError("invalid priority", map[string]any{"priority": "invalid priority"})
	}
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	oldPriority := ticket.Priority
	ticket.Priority = newPriority
	ticket.UpdatedAt = s.now()
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketPriorityChanged,
		TicketID: ticket.ID,
		Payload: events.TicketPriorityChangedPayload{
			OldPriority: oldPriority,
			NewPriority: newPriority,
		},
	})
	return ticket, nil
}

// UpdateDetails edits title, description and category. Empty values
// leave the current field untouched.
func (s *TicketService) UpdateDetails(ctx context.Context, ticketID, title, description string, category domain.TicketCategory) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if t := strings.TrimSpace(title); t != "" {
		ticket.Title = t
	}
	if d := strings.TrimSpace(description); d != "" {
		ticket.Description = d
	}
	if category != "" {
		if !domain.ValidCategory(category) {
			return nil, errorutil.NewValidationError("invalid category", map[string]any{"category": "invalid category"})
		}
		ticket.Category = category
	}
	ticket.UpdatedAt = s.now()
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// generateProtocolID builds an id in the form HD-{year}-{NNNN} with a
// random number in 1..9999, zero-padded to 4 digits. The number is
// not checked for collisions against existing ids; duplicate ids are
// possible within a year. Known defect.
func generateProtocolID(now time.Time) string {
	return fmt.Sprintf("HD-%d-%04d", now.Year(), rand.Intn(9999)+1)
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

// stringPreview truncates to max runes, never mid-sequence.
func stringPreview(body string, max int) string {
	body = strings.TrimSpace(body)
	runes := []rune(body)
	if len(runes) <= max {
		return body
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
