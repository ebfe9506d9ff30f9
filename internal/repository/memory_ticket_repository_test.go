package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/pkg/util/errorutil"
)

func TestMemoryRepositoryListKeepsSeedOrder(t *testing.T) {
	repo := NewMemoryTicketRepository(SeedTickets())

	tickets, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tickets, 6)
	assert.Equal(t, "HD-2024-0001", tickets[0].ID)
	assert.Equal(t, "HD-2024-0006", tickets[5].ID)
}

func TestMemoryRepositoryListReturnsCopies(t *testing.T) {
	repo := NewMemoryTicketRepository(SeedTickets())
	ctx := context.Background()

	tickets, err := repo.List(ctx)
	require.NoError(t, err)
	tickets[0].Title = "mutated"

	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again[0].Title)
}

func TestMemoryRepositoryGetByID(t *testing.T) {
	repo := NewMemoryTicketRepository(SeedTickets())

	ticket, err := repo.GetByID(context.Background(), "HD-2024-0001")
	require.NoError(t, err)
	assert.Equal(t, "Login failure after password change", ticket.Title)
	assert.Len(t, ticket.Comments, 3)

	_, err = repo.GetByID(context.Background(), "HD-2024-9999")
	require.Error(t, err)
	assert.True(t, errorutil.IsNotFound(err))
}

func TestMemoryRepositoryCreateAppends(t *testing.T) {
	repo := NewMemoryTicketRepository(nil)
	ctx := context.Background()

	err := repo.Create(ctx, &domain.Ticket{ID: "HD-2024-7001", Title: "New"})
	require.NoError(t, err)

	tickets, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, "HD-2024-7001", tickets[0].ID)
}

func TestMemoryRepositoryUpdatePreservesComments(t *testing.T) {
	repo := NewMemoryTicketRepository(SeedTickets())
	ctx := context.Background()

	ticket, err := repo.GetByID(ctx, "HD-2024-0001")
	require.NoError(t, err)
	ticket.Status = domain.TicketStatusInProgress
	ticket.Comments = nil

	require.NoError(t, repo.Update(ctx, ticket))

	updated, err := repo.GetByID(ctx, "HD-2024-0001")
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusInProgress, updated.Status)
	assert.Len(t, updated.Comments, 3)
}

func TestMemoryRepositoryUpdateUnknown(t *testing.T) {
	repo := NewMemoryTicketRepository(nil)

	err := repo.Update(context.Background(), &domain.Ticket{ID: "HD-2024-9999"})
	require.Error(t, err)
	assert.True(t, errorutil.IsNotFound(err))
}

func TestMemoryRepositoryAddComment(t *testing.T) {
	repo := NewMemoryTicketRepository(SeedTickets())
	ctx := context.Background()

	comment := &domain.Comment{
		ID:         "c-9000",
		Author:     "IT Support",
		AuthorKind: domain.AuthorKindAgent,
		Body:       "Looking into it",
		CreatedAt:  time.Date(2024, 1, 17, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.AddComment(ctx, "HD-2024-0002", comment))
	assert.Equal(t, "HD-2024-0002", comment.TicketID)

	ticket, err := repo.GetByID(ctx, "HD-2024-0002")
	require.NoError(t, err)
	require.Len(t, ticket.Comments, 1)
	assert.Equal(t, "Looking into it", ticket.Comments[0].Body)

	err = repo.AddComment(ctx, "HD-2024-9999", comment)
	assert.True(t, errorutil.IsNotFound(err))
}

func TestMemoryDraftStoreRoundTrip(t *testing.T) {
	store := NewMemoryDraftStore()
	ctx := context.Background()

	missing, err := store.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.Nil(t, missing)

	draft := domain.Draft{Title: "Monitor flickering", Priority: domain.TicketPriorityMedium}
	require.NoError(t, store.Save(ctx, "session-1", draft))

	loaded, err := store.Load(ctx, "session-1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, draft, *loaded)

	// Sessions are isolated.
	other, err := store.Load(ctx, "session-2")
	require.NoError(t, err)
	assert.Nil(t, other)

	require.NoError(t, store.Clear(ctx, "session-1"))
	cleared, err := store.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.Nil(t, cleared)
}

func TestSeedTicketsDeriveDueFromPriority(t *testing.T) {
	for _, ticket := range SeedTickets() {
		assert.True(t, ticket.DueAt.After(ticket.CreatedAt), "ticket %s due before creation", ticket.ID)
	}
}
