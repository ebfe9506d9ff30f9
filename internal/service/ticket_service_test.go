package service

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	"github.com/spec-kit/helpdesk-service/internal/search"
	"github.com/spec-kit/helpdesk-service/pkg/util/errorutil"
)

var fixedNow = time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)

func newTestService(seed []domain.Ticket) (*TicketService, events.Dispatcher) {
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewTicketService(TicketDependencies{
		TicketRepo: repository.NewMemoryTicketRepository(seed),
		Dispatcher: dispatcher,
		Now:        func() time.Time { return fixedNow },
	})
	return svc, dispatcher
}

func validDraft() domain.Draft {
	return domain.Draft{
		Title:       "Monitor flickering",
		Description: "The screen flickers every few seconds",
		Category:    domain.CategoryHardware,
		Priority:    domain.TicketPriorityHigh,
	}
}

func TestCreateFromDraft(t *testing.T) {
	svc, _ := newTestService(nil)

	ticket, err := svc.CreateFromDraft(context.Background(), validDraft(), "Maria Silva", "Finance")
	require.NoError(t, err)

	assert.Regexp(t, `^HD-2024-\d{4}$`, ticket.ID)
	assert.Equal(t, domain.TicketStatusOpen, ticket.Status)
	assert.Equal(t, fixedNow, ticket.CreatedAt)
	assert.Equal(t, fixedNow.Add(8*time.Hour), ticket.DueAt)
	assert.Equal(t, "Maria Silva", ticket.Requester)
	assert.Equal(t, "Finance", ticket.Department)

	stored, err := svc.Get(context.Background(), ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.Title, stored.Title)
}

func TestCreateFromDraftPublishesEvent(t *testing.T) {
	svc, dispatcher := newTestService(nil)

	var received []events.Event
	dispatcher.Subscribe(events.EventTicketCreated, func(ctx context.Context, e events.Event) error {
		received = append(received, e)
		return nil
	})

	ticket, err := svc.CreateFromDraft(context.Background(), validDraft(), "Maria Silva", "Finance")
	require.NoError(t, err)

	require.Len(t, received, 1)
	assert.Equal(t, ticket.ID, received[0].TicketID)
	payload, ok := received[0].Payload.(events.TicketCreatedPayload)
	require.True(t, ok)
	assert.Equal(t, domain.TicketPriorityHigh, payload.Priority)
}

func TestGenerateProtocolIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^HD-2024-\d{4}$`)
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 1000; i++ {
		id := generateProtocolID(now)
		require.True(t, pattern.MatchString(id), "unexpected id %q", id)
	}
}

func TestSearchDelegatesToEngine(t *testing.T) {
	svc, _ := newTestService(repository.SeedTickets())

	status := domain.TicketStatusOpen
	got, err := svc.Search(context.Background(), search.Criteria{Status: &status})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "HD-2024-0001", got[0].ID)
	assert.Equal(t, "HD-2024-0005", got[1].ID)
}

func TestNextToAttendOrdersByDue(t *testing.T) {
	svc, _ := newTestService(repository.SeedTickets())

	got, err := svc.NextToAttend(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	// Critical tickets due soonest come first; resolved and closed
	// fixtures never appear.
	assert.Equal(t, "HD-2024-0005", got[0].ID)
	assert.Equal(t, "HD-2024-0002", got[1].ID)
	assert.Equal(t, "HD-2024-0001", got[2].ID)
}

func TestAddComment(t *testing.T) {
	svc, _ := newTestService(repository.SeedTickets())

	comment, err := svc.AddComment(context.Background(), "HD-2024-0002", "IT Support", domain.AuthorKindAgent, "Swapping the power supply")
	require.NoError(t, err)
	assert.NotEmpty(t, comment.ID)
	assert.Equal(t, fixedNow, comment.CreatedAt)

	ticket, err := svc.Get(context.Background(), "HD-2024-0002")
	require.NoError(t, err)
	require.Len(t, ticket.Comments, 1)
	assert.Equal(t, "Swapping the power supply", ticket.Comments[0].Body)
	assert.Equal(t, fixedNow, ticket.UpdatedAt)
}

func TestAddCommentEmptyBody(t *testing.T) {
	svc, _ := newTestService(repository.SeedTickets())

	_, err := svc.AddComment(context.Background(), "HD-2024-0002", "IT Support", domain.AuthorKindAgent, "   ")
	require.Error(t, err)
	assert.True(t, errorutil.IsValidation(err))
}

func TestAddCommentUnknownTicket(t *testing.T) {
	svc, _ := newTestService(nil)

	_, err := svc.AddComment(context.Background(), "HD-2024-9999", "IT Support", domain.AuthorKindAgent, "hello")
	require.Error(t, err)
	assert.True(t, errorutil.IsNotFound(err))
}

func TestUpdateStatusToResolvedSetsResolvedAt(t *testing.T) {
	svc, _ := newTestService(repository.SeedTickets())

	ticket, err := svc.UpdateStatus(context.Background(), "HD-2024-0001", domain.TicketStatusResolved)
	require.NoError(t, err)
	require.NotNil(t, ticket.ResolvedAt)
	assert.Equal(t, fixedNow, *ticket.ResolvedAt)
	assert.Equal(t, fixedNow, ticket.UpdatedAt)
}

func TestUpdateStatusReopenClearsResolvedAt(t *testing.T) {
	svc, _ := newTestService(repository.SeedTickets())

	// HD-2024-0003 ships resolved in the fixtures.
	ticket, err := svc.UpdateStatus(context.Background(), "HD-2024-0003", domain.TicketStatusOpen)
	require.NoError(t, err)
	assert.Nil(t, ticket.ResolvedAt)
}

func TestUpdateStatusKeepsExistingResolvedAt(t *testing.T) {
	svc, _ := newTestService(repository.SeedTickets())

	before, err := svc.Get(context.Background(), "HD-2024-0003")
	require.NoError(t, err)
	require.NotNil(t, before.ResolvedAt)

	ticket, err := svc.UpdateStatus(context.Background(), "HD-2024-0003", domain.TicketStatusClosed)
	require.NoError(t, err)
	require.NotNil(t, ticket.ResolvedAt)
	assert.Equal(t, *before.ResolvedAt, *ticket.ResolvedAt)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	svc, _ := newTestService(repository.SeedTickets())

	_, err := svc.UpdateStatus(context.Background(), "HD-2024-0001", domain.TicketStatus("ARCHIVED"))
	require.Error(t, err)
	assert.True(t, errorutil.IsValidation(err))
}

func TestUpdatePriorityKeepsDueAt(t *testing.T) {
	svc, _ := newTestService(repository.SeedTickets())

	before, err := svc.Get(context.Background(), "HD-2024-0001")
	require.NoError(t, err)

	ticket, err := svc.UpdatePriority(context.Background(), "HD-2024-0001", domain.TicketPriorityLow)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketPriorityLow, ticket.Priority)
	assert.Equal(t, before.DueAt, ticket.DueAt)
}

func TestUpdateDetailsPartial(t *testing.T) {
	svc, _ := newTestService(repository.SeedTickets())

	ticket, err := svc.UpdateDetails(context.Background(), "HD-2024-0001", "Login broken for whole team", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Login broken for whole team", ticket.Title)
	// Untouched fields keep their values.
	assert.Equal(t, domain.CategoryAccess, ticket.Category)
	assert.NotEmpty(t, ticket.Description)
}

func TestStringPreviewKeepsRuneBoundaries(t *testing.T) {
	body := strings.Repeat("çã", 70)
	preview := stringPreview(body, 120)
	assert.True(t, utf8.ValidString(preview))
	assert.Equal(t, 120, utf8.RuneCountInString(preview))
	assert.True(t, strings.HasSuffix(preview, "..."))

	short := "héllo wörld"
	assert.Equal(t, short, stringPreview(short, 120))
}

func TestUpdateDetailsInvalidCategory(t *testing.T) {
	svc, _ := newTestService(repository.SeedTickets())

	_, err := svc.UpdateDetails(context.Background(), "HD-2024-0001", "", "", domain.TicketCategory("FURNITURE"))
	require.Error(t, err)
	assert.True(t, errorutil.IsValidation(err))
}
