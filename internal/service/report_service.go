package service

import (
	"context"
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/repository"
)

// Report aggregates the figures the reporting screens render.
type Report struct {
	TotalTickets          int
	Resolved              int
	Pending               int
	ResolutionRatePercent int
	AverageResolution     time.Duration
	ByDepartment          map[string]int
	ByPriority            map[domain.TicketPriority]int
	ByStatus              map[domain.TicketStatus]int
}

// ReportService computes aggregations over the ticket collection.
type ReportService struct {
	tickets repository.TicketRepository
}

// NewReportService constructs the service.
func NewReportService(tickets repository.TicketRepository) *ReportService {
	return &ReportService{tickets: tickets}
}

// Summary aggregates tickets created inside the optional [from, to]
// window. Nil bounds leave that side open.
func (s *ReportService) Summary(ctx context.Context, from, to *time.Time) (*Report, error) {
	tickets, err := s.tickets.List(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{
		ByDepartment: map[string]int{},
		ByPriority:   map[domain.TicketPriority]int{},
		ByStatus:     map[domain.TicketStatus]int{},
	}

	var totalResolution time.Duration
	resolvedWithTime := 0
	for _, t := range tickets {
		if from != nil && t.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && t.CreatedAt.After(*to) {
			continue
		}
		report.TotalTickets++
		report.ByDepartment[t.Department]++
		report.ByPriority[t.Priority]++
		report.ByStatus[t.Status]++
		if t.IsFinished() {
			report.Resolved++
		} else {
			report.Pending++
		}
		if t.ResolvedAt != nil {
			totalResolution += t.ResolvedAt.Sub(t.CreatedAt)
			resolvedWithTime++
		}
	}

	if report.TotalTickets > 0 {
		report.ResolutionRatePercent = report.Resolved * 100 / report.TotalTickets
	}
	if resolvedWithTime > 0 {
		report.AverageResolution = totalResolution / time.Duration(resolvedWithTime)
	}
	return report, nil
}
