package domain

import "time"

// CommentAuthorKind indicates who authored a comment.
type CommentAuthorKind string

const (
	AuthorKindRequester CommentAuthorKind = "REQUESTER"
	AuthorKindAgent     CommentAuthorKind = "AGENT"
)

// Comment is an append-only entry in a ticket thread, ordered by
// creation time.
type Comment struct {
	ID         string
	TicketID   string
	Author     string
	AuthorKind CommentAuthorKind
	Body       string
	CreatedAt  time.Time
}
