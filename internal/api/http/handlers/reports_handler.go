package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/service"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util/errorutil"
)

// ReportsHandler serves aggregate reporting figures.
type ReportsHandler struct {
	reports *service.ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reports *service.ReportService) *ReportsHandler {
	return &ReportsHandler{reports: reports}
}

// Summary GET /reports/summary. Optional from/to bounds in RFC 3339 or
// plain dates limit the window by creation timestamp.
func (h *ReportsHandler) Summary(c *fiber.Ctx) error {
	from, err := parseTimeQuery(c.Query("from"))
	if err != nil {
		return apperrors.NewValidationError("invalid from timestamp", map[string]any{"from": c.Query("from")})
	}
	to, err := parseTimeQuery(c.Query("to"))
	if err != nil {
		return apperrors.NewValidationError("invalid to timestamp", map[string]any{"to": c.Query("to")})
	}

	report, err := h.reports.Summary(c.UserContext(), from, to)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"total_tickets":          report.TotalTickets,
			"resolved":               report.Resolved,
			"pending":                report.Pending,
			"resolution_rate":        report.ResolutionRatePercent,
			"avg_resolution_hours":   report.AverageResolution.Hours(),
			"tickets_by_department":  report.ByDepartment,
			"tickets_by_priority":    report.ByPriority,
			"tickets_by_status":      report.ByStatus,
		},
	})
}

func parseTimeQuery(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
