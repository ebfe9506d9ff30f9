package form

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	"github.com/spec-kit/helpdesk-service/pkg/util/errorutil"
)

type stubSubmitter struct {
	calls int
	err   error
}

func (s *stubSubmitter) CreateFromDraft(ctx context.Context, draft domain.Draft, requester, department string) (*domain.Ticket, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Ticket{ID: "HD-2024-1234", Title: draft.Title}, nil
}

func newTestController(t *testing.T, submitter Submitter, delay time.Duration) (*Controller, repository.DraftStore) {
	t.Helper()
	store := repository.NewMemoryDraftStore()
	c, err := NewController(context.Background(), Config{
		Store:      store,
		SessionKey: "session-1",
		Submitter:  submitter,
		Delay:      delay,
		Requester:  "Maria Silva",
		Department: "Finance",
	})
	require.NoError(t, err)
	return c, store
}

func fillValidDraft(t *testing.T, c *Controller) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, c.SetTitle(ctx, "Monitor flickering"))
	require.NoError(t, c.SetDescription(ctx, "The screen flickers every few seconds"))
	c.SetCategory(domain.CategoryHardware)
	c.SetPriority(domain.TicketPriorityMedium)
}

func TestValidateEmptyDraft(t *testing.T) {
	c, _ := newTestController(t, &stubSubmitter{}, 0)

	errs := c.Validate()
	assert.Equal(t, "title is required", errs[FieldTitle])
	assert.Equal(t, "description is required", errs[FieldDescription])
	assert.Equal(t, "category is required", errs[FieldCategory])
	assert.Equal(t, "priority is required", errs[FieldPriority])
}

func TestValidateShortFields(t *testing.T) {
	c, _ := newTestController(t, &stubSubmitter{}, 0)
	ctx := context.Background()
	require.NoError(t, c.SetTitle(ctx, "abc"))
	require.NoError(t, c.SetDescription(ctx, "too short"))

	errs := c.Validate()
	assert.Equal(t, "minimum 5 characters", errs[FieldTitle])
	assert.Equal(t, "minimum 10 characters", errs[FieldDescription])
}

func TestValidateInvalidChoicesAndEmail(t *testing.T) {
	c, _ := newTestController(t, &stubSubmitter{}, 0)
	fillValidDraft(t, c)
	c.SetCategory("FURNITURE")
	c.SetPriority("URGENT")
	c.SetContactEmail("not-an-email")

	errs := c.Validate()
	assert.Equal(t, "invalid category", errs[FieldCategory])
	assert.Equal(t, "invalid priority", errs[FieldPriority])
	assert.Equal(t, "invalid email address", errs[FieldEmail])
}

func TestValidateValidDraft(t *testing.T) {
	c, _ := newTestController(t, &stubSubmitter{}, 0)
	fillValidDraft(t, c)
	c.SetContactEmail("maria.silva@example.com")

	assert.Empty(t, c.Validate())
	assert.True(t, c.CanSubmit())
}

func TestCompletionPercent(t *testing.T) {
	c, _ := newTestController(t, &stubSubmitter{}, 0)
	ctx := context.Background()

	assert.Equal(t, 0, c.CompletionPercent())

	require.NoError(t, c.SetTitle(ctx, "Monitor flickering"))
	require.NoError(t, c.SetDescription(ctx, "The screen flickers every few seconds"))
	assert.Equal(t, 50, c.CompletionPercent())

	c.SetCategory(domain.CategoryHardware)
	assert.Equal(t, 75, c.CompletionPercent())

	c.SetPriority(domain.TicketPriorityMedium)
	assert.Equal(t, 100, c.CompletionPercent())
}

func TestCompletionIgnoresOptionalFields(t *testing.T) {
	c, _ := newTestController(t, &stubSubmitter{}, 0)
	c.SetContactEmail("maria.silva@example.com")
	c.SetContactPhone("555-0100")
	assert.Equal(t, 0, c.CompletionPercent())
}

func TestDraftPersistedOnTitleAndDescription(t *testing.T) {
	c, store := newTestController(t, &stubSubmitter{}, 0)
	ctx := context.Background()

	require.NoError(t, c.SetTitle(ctx, "Monitor flickering"))
	saved, err := store.Load(ctx, "session-1")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "Monitor flickering", saved.Title)

	require.NoError(t, c.SetDescription(ctx, "The screen flickers"))
	saved, err = store.Load(ctx, "session-1")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "The screen flickers", saved.Description)
}

func TestDraftClearedWhenEmptied(t *testing.T) {
	c, store := newTestController(t, &stubSubmitter{}, 0)
	ctx := context.Background()

	require.NoError(t, c.SetTitle(ctx, "Monitor flickering"))
	require.NoError(t, c.SetTitle(ctx, ""))

	saved, err := store.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.Nil(t, saved)
}

func TestRestoredDraftIsBaseline(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryDraftStore()
	require.NoError(t, store.Save(ctx, "session-1", domain.Draft{
		Title:       "Monitor flickering",
		Description: "The screen flickers every few seconds",
		Category:    domain.CategoryHardware,
		Priority:    domain.TicketPriorityMedium,
	}))

	c, err := NewController(ctx, Config{Store: store, SessionKey: "session-1"})
	require.NoError(t, err)

	assert.Equal(t, 100, c.CompletionPercent())
	assert.Equal(t, "Monitor flickering", c.Draft().Title)

	// A later edit overrides only the edited field.
	require.NoError(t, c.SetTitle(ctx, "Monitor completely dark"))
	assert.Equal(t, "Monitor completely dark", c.Draft().Title)
	assert.Equal(t, domain.CategoryHardware, c.Draft().Category)
}

func TestSubmitInvalidDraft(t *testing.T) {
	submitter := &stubSubmitter{}
	c, _ := newTestController(t, submitter, 0)

	_, err := c.Submit(context.Background())
	require.Error(t, err)
	assert.True(t, errorutil.IsValidation(err))
	assert.Zero(t, submitter.calls)

	domainErr := errorutil.ToDomainError(err)
	assert.Equal(t, "please fill in all required fields", domainErr.Message)
	assert.Contains(t, domainErr.Details, FieldTitle)
}

func TestSubmitSuccessClearsDraft(t *testing.T) {
	submitter := &stubSubmitter{}
	c, store := newTestController(t, submitter, 0)
	fillValidDraft(t, c)

	ticket, err := c.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "HD-2024-1234", ticket.ID)
	assert.Equal(t, 1, submitter.calls)

	saved, err := store.Load(context.Background(), "session-1")
	require.NoError(t, err)
	assert.Nil(t, saved)
	assert.Equal(t, 0, c.CompletionPercent())
}

func TestSubmitFailureIsRetryable(t *testing.T) {
	submitter := &stubSubmitter{err: errors.New("backend down")}
	c, store := newTestController(t, submitter, 0)
	fillValidDraft(t, c)

	_, err := c.Submit(context.Background())
	require.Error(t, err)

	domainErr := errorutil.ToDomainError(err)
	assert.Equal(t, "SUBMISSION_FAILED", domainErr.Code)
	assert.True(t, domainErr.Retryable)

	// The draft survives a failed submission so the user can retry.
	saved, loadErr := store.Load(context.Background(), "session-1")
	require.NoError(t, loadErr)
	require.NotNil(t, saved)
	assert.Equal(t, "Monitor flickering", saved.Title)
}

func TestSubmitCancelledDuringDelay(t *testing.T) {
	submitter := &stubSubmitter{}
	c, store := newTestController(t, submitter, 500*time.Millisecond)
	fillValidDraft(t, c)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Submit(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, submitter.calls)

	// Nothing changed: the draft is intact in memory and in the store.
	assert.Equal(t, 100, c.CompletionPercent())
	saved, loadErr := store.Load(context.Background(), "session-1")
	require.NoError(t, loadErr)
	require.NotNil(t, saved)
	assert.Equal(t, "Monitor flickering", saved.Title)
}

func TestClearResetsEverything(t *testing.T) {
	c, store := newTestController(t, &stubSubmitter{}, 0)
	fillValidDraft(t, c)

	require.NoError(t, c.Clear(context.Background()))
	assert.Equal(t, domain.Draft{}, c.Draft())

	saved, err := store.Load(context.Background(), "session-1")
	require.NoError(t, err)
	assert.Nil(t, saved)
}
