package repository

import (
	"context"
	"sync"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/pkg/util/errorutil"
)

// memoryTicketRepository keeps tickets in insertion order in memory.
// It backs the service when no database is configured and doubles as
// the test fixture store.
type memoryTicketRepository struct {
	mu      sync.RWMutex
	tickets []domain.Ticket
}

// NewMemoryTicketRepository builds an in-memory repository seeded with
// the given tickets.
func NewMemoryTicketRepository(seed []domain.Ticket) TicketRepository {
	tickets := make([]domain.Ticket, len(seed))
	copy(tickets, seed)
	return &memoryTicketRepository{tickets: tickets}
}

func (r *memoryTicketRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Ticket, len(r.tickets))
	copy(out, r.tickets)
	return out, nil
}

func (r *memoryTicketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.tickets {
		if r.tickets[i].ID == id {
			ticket := r.tickets[i]
			ticket.Comments = append([]domain.Comment(nil), r.tickets[i].Comments...)
			return &ticket, nil
		}
	}
	return nil, errorutil.NewNotFound("ticket", map[string]any{"id": id})
}

func (r *memoryTicketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tickets = append(r.tickets, *ticket)
	return nil
}

func (r *memoryTicketRepository) Update(ctx context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tickets {
		if r.tickets[i].ID == ticket.ID {
			comments := r.tickets[i].Comments
			r.tickets[i] = *ticket
			r.tickets[i].Comments = comments
			return nil
		}
	}
	return errorutil.NewNotFound("ticket", map[string]any{"id": ticket.ID})
}

func (r *memoryTicketRepository) AddComment(ctx context.Context, ticketID string, comment *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tickets {
		if r.tickets[i].ID == ticketID {
			comment.TicketID = ticketID
			r.tickets[i].Comments = append(r.tickets[i].Comments, *comment)
			return nil
		}
	}
	return errorutil.NewNotFound("ticket", map[string]any{"id": ticketID})
}
