package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "OPEN"
	TicketStatusInProgress TicketStatus = "IN_PROGRESS"
	TicketStatusResolved   TicketStatus = "RESOLVED"
	TicketStatusClosed     TicketStatus = "CLOSED"
)

// TicketPriority enumerates SLA urgency.
type TicketPriority string

const (
	TicketPriorityCritical TicketPriority = "CRITICAL"
	TicketPriorityHigh     TicketPriority = "HIGH"
	TicketPriorityMedium   TicketPriority = "MEDIUM"
	TicketPriorityLow      TicketPriority = "LOW"
)

// TicketCategory is the closed set of problem categories.
type TicketCategory string

const (
	CategoryHardware    TicketCategory = "HARDWARE"
	CategorySoftware    TicketCategory = "SOFTWARE"
	CategoryPeripherals TicketCategory = "PERIPHERALS"
	CategoryAccess      TicketCategory = "ACCESS"
	CategoryNetwork     TicketCategory = "NETWORK"
	CategoryOther       TicketCategory = "OTHER"
)

// Categories lists every valid category.
func Categories() []TicketCategory {
	return []TicketCategory{
		CategoryHardware,
		CategorySoftware,
		CategoryPeripherals,
		CategoryAccess,
		CategoryNetwork,
		CategoryOther,
	}
}

// ValidCategory reports whether c belongs to the closed set.
func ValidCategory(c TicketCategory) bool {
	for _, candidate := range Categories() {
		if candidate == c {
			return true
		}
	}
	return false
}

// ValidPriority reports whether p is one of the four priorities.
func ValidPriority(p TicketPriority) bool {
	switch p {
	case TicketPriorityCritical, TicketPriorityHigh, TicketPriorityMedium, TicketPriorityLow:
		return true
	}
	return false
}

// ValidStatus reports whether s is an enumerated status.
func ValidStatus(s TicketStatus) bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// Ticket is the aggregate for support requests. ID is immutable once
// created and formatted HD-YEAR-NNNN.
type Ticket struct {
	ID          string
	Title       string
	Description string
	Status      TicketStatus
	Priority    TicketPriority
	Category    TicketCategory
	Subcategory *string
	Requester   string
	Department  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ResolvedAt  *time.Time
	DueAt       time.Time
	Comments    []Comment
}

// IsFinished reports whether the ticket left the active queue.
func (t *Ticket) IsFinished() bool {
	return t.Status == TicketStatusResolved || t.Status == TicketStatusClosed
}
