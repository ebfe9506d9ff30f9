package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health        *handlers.HealthHandler
	Tickets       *handlers.TicketsHandler
	Drafts        *handlers.DraftsHandler
	Notifications *handlers.NotificationsHandler
	Dashboard     *handlers.DashboardHandler
	Reports       *handlers.ReportsHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	tickets := app.Group("/tickets")
	tickets.Get("/", cfg.Tickets.ListTickets)
	tickets.Post("/", cfg.Tickets.CreateTicket)
	tickets.Post("/suggestions", cfg.Tickets.Suggestions)
	tickets.Get("/:id", cfg.Tickets.GetTicket)
	tickets.Patch("/:id", cfg.Tickets.UpdateTicket)
	tickets.Patch("/:id/status", cfg.Tickets.UpdateStatus)
	tickets.Patch("/:id/priority", cfg.Tickets.UpdatePriority)
	tickets.Post("/:id/comments", cfg.Tickets.AddComment)

	drafts := app.Group("/drafts")
	drafts.Get("/", cfg.Drafts.Get)
	drafts.Put("/", cfg.Drafts.Save)
	drafts.Delete("/", cfg.Drafts.Delete)
	drafts.Post("/validate", cfg.Drafts.Validate)

	notifications := app.Group("/notifications")
	notifications.Get("/", cfg.Notifications.List)
	notifications.Get("/critical", cfg.Notifications.Critical)
	notifications.Post("/read-all", cfg.Notifications.MarkAllRead)
	notifications.Post("/:id/read", cfg.Notifications.MarkRead)

	app.Get("/dashboard", cfg.Dashboard.Summary)
	app.Get("/reports/summary", cfg.Reports.Summary)
}
