package repository

import (
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/sla"
)

// SeedTickets returns the demo ticket collection used when no
// database is configured. Due timestamps derive from priority at
// creation time so the "next to attend" ordering is deterministic.
func SeedTickets() []domain.Ticket {
	auth := "Authentication"
	printing := "Printing"

	t1 := ticketFixture(domain.Ticket{
		ID:          "HD-2024-0001",
		Title:       "Login failure after password change",
		Description: "User cannot access the system after changing the password, even with the correct credentials",
		Status:      domain.TicketStatusOpen,
		Priority:    domain.TicketPriorityHigh,
		Category:    domain.CategoryAccess,
		Subcategory: &auth,
		Requester:   "Maria Silva",
		Department:  "Finance",
		CreatedAt:   time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC),
	})
	t1.Comments = []domain.Comment{
		{
			ID:         "c-0001",
			TicketID:   t1.ID,
			Author:     "Maria Silva",
			AuthorKind: domain.AuthorKindRequester,
			Body:       "Ticket created. Urgent, the whole team is affected.",
			CreatedAt:  time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:         "c-0002",
			TicketID:   t1.ID,
			Author:     "IT Support",
			AuthorKind: domain.AuthorKindAgent,
			Body:       "Ticket received. Investigating the authentication server.",
			CreatedAt:  time.Date(2024, 1, 15, 10, 15, 0, 0, time.UTC),
		},
		{
			ID:         "c-0003",
			TicketID:   t1.ID,
			Author:     "IT Support",
			AuthorKind: domain.AuthorKindAgent,
			Body:       "Problem identified. Working on a fix in the account database.",
			CreatedAt:  time.Date(2024, 1, 16, 14, 20, 0, 0, time.UTC),
		},
	}

	t2 := ticketFixture(domain.Ticket{
		ID:          "HD-2024-0002",
		Title:       "Workstation does not power on",
		Description: "The machine at station 12 is completely dead",
		Status:      domain.TicketStatusInProgress,
		Priority:    domain.TicketPriorityCritical,
		Category:    domain.CategoryHardware,
		Requester:   "Joao Santos",
		Department:  "Operations",
		CreatedAt:   time.Date(2024, 1, 15, 10, 15, 0, 0, time.UTC),
	})

	t3 := ticketFixture(domain.Ticket{
		ID:          "HD-2024-0003",
		Title:       "Design software installation",
		Description: "New design software needs to be installed for the campaign team",
		Status:      domain.TicketStatusResolved,
		Priority:    domain.TicketPriorityMedium,
		Category:    domain.CategorySoftware,
		Requester:   "Ana Costa",
		Department:  "Marketing",
		CreatedAt:   time.Date(2024, 1, 14, 14, 20, 0, 0, time.UTC),
	})
	resolved3 := time.Date(2024, 1, 15, 16, 45, 0, 0, time.UTC)
	t3.ResolvedAt = &resolved3
	t3.UpdatedAt = resolved3

	t4 := ticketFixture(domain.Ticket{
		ID:          "HD-2024-0004",
		Title:       "Printer on the 2nd floor not printing",
		Description: "Print jobs queue up but nothing comes out of the shared printer",
		Status:      domain.TicketStatusClosed,
		Priority:    domain.TicketPriorityLow,
		Category:    domain.CategoryPeripherals,
		Subcategory: &printing,
		Requester:   "Carlos Oliveira",
		Department:  "HR",
		CreatedAt:   time.Date(2024, 1, 12, 11, 0, 0, 0, time.UTC),
	})
	resolved4 := time.Date(2024, 1, 13, 9, 30, 0, 0, time.UTC)
	t4.ResolvedAt = &resolved4
	t4.UpdatedAt = resolved4

	t5 := ticketFixture(domain.Ticket{
		ID:          "HD-2024-0005",
		Title:       "Sales system errors out while processing orders",
		Description: "Every order submission fails with an unexpected error message",
		Status:      domain.TicketStatusOpen,
		Priority:    domain.TicketPriorityCritical,
		Category:    domain.CategorySoftware,
		Requester:   "Fernanda Lima",
		Department:  "Sales",
		CreatedAt:   time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC),
	})

	t6 := ticketFixture(domain.Ticket{
		ID:          "HD-2024-0006",
		Title:       "System access for new employee",
		Description: "A new hire needs accounts provisioned for the internal systems",
		Status:      domain.TicketStatusInProgress,
		Priority:    domain.TicketPriorityMedium,
		Category:    domain.CategoryAccess,
		Requester:   "Roberto Dias",
		Department:  "HR",
		CreatedAt:   time.Date(2024, 1, 15, 13, 45, 0, 0, time.UTC),
	})

	return []domain.Ticket{t1, t2, t3, t4, t5, t6}
}

func ticketFixture(t domain.Ticket) domain.Ticket {
	t.UpdatedAt = t.CreatedAt
	t.DueAt = sla.DueAt(t.Priority, t.CreatedAt)
	return t
}
