// Package search filters ticket collections against optional,
// ANDed criteria. Every view goes through this single engine instead
// of carrying its own copy of the predicate logic.
package search

import (
	"strings"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// Criteria holds optional match predicates. A nil dimension matches
// everything; an empty text term applies no text filtering.
type Criteria struct {
	Text       string
	Status     *domain.TicketStatus
	Priority   *domain.TicketPriority
	Category   *domain.TicketCategory
	Department *string
}

// Apply returns the tickets matching every specified dimension of the
// criteria, preserving the original relative order. It never sorts.
func Apply(tickets []domain.Ticket, criteria Criteria) []domain.Ticket {
	matched := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if Matches(t, criteria) {
			matched = append(matched, t)
		}
	}
	return matched
}

// Matches reports whether a single ticket satisfies the criteria.
func Matches(t domain.Ticket, criteria Criteria) bool {
	if term := strings.TrimSpace(criteria.Text); term != "" && !matchesText(t, term) {
		return false
	}
	if criteria.Status != nil && t.Status != *criteria.Status {
		return false
	}
	if criteria.Priority != nil && t.Priority != *criteria.Priority {
		return false
	}
	if criteria.Category != nil && t.Category != *criteria.Category {
		return false
	}
	if criteria.Department != nil && t.Department != *criteria.Department {
		return false
	}
	return true
}

// matchesText does a case-insensitive substring match against id,
// title, description and requester name.
func matchesText(t domain.Ticket, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(t.ID), term) ||
		strings.Contains(strings.ToLower(t.Title), term) ||
		strings.Contains(strings.ToLower(t.Description), term) ||
		strings.Contains(strings.ToLower(t.Requester), term)
}

// Active returns open and in-progress tickets, order preserved.
func Active(tickets []domain.Ticket) []domain.Ticket {
	active := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if !t.IsFinished() {
			active = append(active, t)
		}
	}
	return active
}

// Finished returns resolved and closed tickets, order preserved.
func Finished(tickets []domain.Ticket) []domain.Ticket {
	finished := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if t.IsFinished() {
			finished = append(finished, t)
		}
	}
	return finished
}
