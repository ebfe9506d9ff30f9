package dto

import (
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/sla"
)

// CreateTicketRequest mirrors the creation form draft.
type CreateTicketRequest struct {
	Title        string `json:"title"`
	Category     string `json:"category"`
	Priority     string `json:"priority"`
	Description  string `json:"description"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Requester    string `json:"requester"`
	Department   string `json:"department"`
}

// UpdateTicketRequest edits ticket details.
type UpdateTicketRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// UpdateStatusRequest changes ticket status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdatePriorityRequest changes ticket priority.
type UpdatePriorityRequest struct {
	Priority string `json:"priority"`
}

// CreateCommentRequest appends to a ticket thread.
type CreateCommentRequest struct {
	Author     string `json:"author"`
	AuthorKind string `json:"author_kind"`
	Body       string `json:"body"`
}

// SuggestionsRequest asks for canned troubleshooting hints.
type SuggestionsRequest struct {
	Description string `json:"description"`
}

// SaveDraftRequest stores a draft snapshot for a session.
type SaveDraftRequest struct {
	Title        string `json:"title"`
	Category     string `json:"category"`
	Priority     string `json:"priority"`
	Description  string `json:"description"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
}

// TicketSummary is the list/table row shape.
type TicketSummary struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Status        string       `json:"status"`
	StatusBadge   domain.Badge `json:"status_badge"`
	Priority      string       `json:"priority"`
	PriorityBadge domain.Badge `json:"priority_badge"`
	Category      string       `json:"category"`
	CategoryBadge domain.Badge `json:"category_badge"`
	Subcategory   *string      `json:"subcategory,omitempty"`
	Requester     string       `json:"requester"`
	Department    string       `json:"department"`
	SLA           string       `json:"sla"`
	SLABadge      domain.Badge `json:"sla_badge"`
	CreatedAt     time.Time    `json:"created_at"`
	DueAt         time.Time    `json:"due_at"`
}

// TicketDetail is the full ticket view shape.
type TicketDetail struct {
	TicketSummary
	Description string            `json:"description"`
	UpdatedAt   time.Time         `json:"updated_at"`
	ResolvedAt  *time.Time        `json:"resolved_at,omitempty"`
	Comments    []CommentResponse `json:"comments"`
}

// CommentResponse represents a thread entry.
type CommentResponse struct {
	ID         string    `json:"id"`
	Author     string    `json:"author"`
	AuthorKind string    `json:"author_kind"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

// NotificationResponse is a panel entry.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Priority  string    `json:"priority,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTicketSummary maps a domain ticket to its table row, computing
// the SLA bucket against now instead of reading a stored value.
func NewTicketSummary(t *domain.Ticket, now time.Time) TicketSummary {
	bucket := sla.Status(t.DueAt, now)
	return TicketSummary{
		ID:            t.ID,
		Title:         t.Title,
		Status:        string(t.Status),
		StatusBadge:   domain.StatusBadge(t.Status),
		Priority:      string(t.Priority),
		PriorityBadge: domain.PriorityBadge(t.Priority),
		Category:      string(t.Category),
		CategoryBadge: domain.CategoryBadge(t.Category),
		Subcategory:   t.Subcategory,
		Requester:     t.Requester,
		Department:    t.Department,
		SLA:           string(bucket),
		SLABadge:      sla.Badge(bucket),
		CreatedAt:     t.CreatedAt,
		DueAt:         t.DueAt,
	}
}

// NewTicketDetail maps a domain ticket with its comment thread.
func NewTicketDetail(t *domain.Ticket, now time.Time) TicketDetail {
	comments := make([]CommentResponse, 0, len(t.Comments))
	for _, c := range t.Comments {
		comments = append(comments, CommentResponse{
			ID:         c.ID,
			Author:     c.Author,
			AuthorKind: string(c.AuthorKind),
			Body:       c.Body,
			CreatedAt:  c.CreatedAt,
		})
	}
	return TicketDetail{
		TicketSummary: NewTicketSummary(t, now),
		Description:   t.Description,
		UpdatedAt:     t.UpdatedAt,
		ResolvedAt:    t.ResolvedAt,
		Comments:      comments,
	}
}

// NewNotificationResponse maps a panel notification.
func NewNotificationResponse(n domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		Priority:  string(n.Priority),
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}
