// Package sla derives due timestamps from ticket priority and buckets
// remaining time into discrete urgency levels.
package sla

import (
	"sort"
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// Bucket is a discrete urgency level derived from remaining time.
type Bucket string

const (
	BucketOverdue   Bucket = "OVERDUE"
	BucketCritical  Bucket = "CRITICAL"
	BucketAttention Bucket = "ATTENTION"
	BucketNormal    Bucket = "NORMAL"
)

// Remaining-time thresholds in hours, evaluated strictly
// less-than, first match wins.
const (
	criticalThresholdHours  = 2
	attentionThresholdHours = 8
)

// responseWindows maps priority to the maximum response time counted
// from ticket creation.
var responseWindows = map[domain.TicketPriority]time.Duration{
	domain.TicketPriorityCritical: 2 * time.Hour,
	domain.TicketPriorityHigh:     8 * time.Hour,
	domain.TicketPriorityMedium:   24 * time.Hour,
	domain.TicketPriorityLow:      72 * time.Hour,
}

// ResponseWindow returns the SLA window for a priority. Unknown
// priorities fall back to the medium window.
func ResponseWindow(p domain.TicketPriority) time.Duration {
	if w, ok := responseWindows[p]; ok {
		return w
	}
	return responseWindows[domain.TicketPriorityMedium]
}

// DueAt derives the due timestamp once, at ticket creation.
func DueAt(p domain.TicketPriority, createdAt time.Time) time.Time {
	return createdAt.Add(ResponseWindow(p))
}

// Status buckets the time remaining until dueAt. It is a pure
// function of its inputs; callers recompute it rather than store it.
func Status(dueAt, now time.Time) Bucket {
	hoursRemaining := dueAt.Sub(now).Hours()
	switch {
	case hoursRemaining < 0:
		return BucketOverdue
	case hoursRemaining < criticalThresholdHours:
		return BucketCritical
	case hoursRemaining < attentionThresholdHours:
		return BucketAttention
	default:
		return BucketNormal
	}
}

// Badge returns presentation attributes for a bucket.
func Badge(b Bucket) domain.Badge {
	switch b {
	case BucketOverdue:
		return domain.Badge{Label: "Overdue", Color: "red"}
	case BucketCritical:
		return domain.Badge{Label: "Critical", Color: "orange"}
	case BucketAttention:
		return domain.Badge{Label: "Attention", Color: "yellow"}
	default:
		return domain.Badge{Label: "Normal", Color: "green"}
	}
}

// NextToAttend returns the tickets most urgently awaiting attention:
// resolved and closed tickets are dropped, the rest sorted ascending
// by due timestamp and truncated to limit. The sort is stable so
// tickets with equal due timestamps keep their original relative
// order.
func NextToAttend(tickets []domain.Ticket, limit int) []domain.Ticket {
	pending := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if t.IsFinished() {
			continue
		}
		pending = append(pending, t)
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].DueAt.Before(pending[j].DueAt)
	})
	if limit >= 0 && len(pending) > limit {
		pending = pending[:limit]
	}
	return pending
}
