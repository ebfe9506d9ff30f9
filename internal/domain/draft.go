package domain

// Draft is a partially filled ticket-creation form snapshot, keyed to
// the browsing session by the form controller.
type Draft struct {
	Title        string         `json:"title"`
	Category     TicketCategory `json:"category"`
	Priority     TicketPriority `json:"priority"`
	Description  string         `json:"description"`
	ContactEmail string         `json:"contact_email"`
	ContactPhone string         `json:"contact_phone"`
}

// HasContent reports whether the draft is worth keeping. A draft is
// only retained while at least one of title/description is non-empty.
func (d Draft) HasContent() bool {
	return d.Title != "" || d.Description != ""
}
