package repository

import (
	"context"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// TicketRepository encapsulates ticket persistence. The filter, SLA
// and validation logic accept results from this boundary without
// modification, so the same views can later run against a real store.
type TicketRepository interface {
	List(ctx context.Context) ([]domain.Ticket, error)
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	Create(ctx context.Context, ticket *domain.Ticket) error
	Update(ctx context.Context, ticket *domain.Ticket) error
	AddComment(ctx context.Context, ticketID string, comment *domain.Comment) error
}

// DraftStore is the draft-persistence port: key-value put/get/delete
// by session key. Load returns (nil, nil) when no draft exists.
type DraftStore interface {
	Save(ctx context.Context, key string, draft domain.Draft) error
	Load(ctx context.Context, key string) (*domain.Draft, error)
	Clear(ctx context.Context, key string) error
}
