package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/scheduling-service/internal/api/http/handlers"
	"github.com/spec-kit/scheduling-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Appointments   *handlers.AppointmentsHandler
	Clients        *handlers.ClientsHandler
	Expenses       *handlers.ExpensesHandler
	Salaries       *handlers.SalariesHandler
	Events         *handlers.EventsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/login", cfg.Auth.Login)
	app.Post("/refresh", cfg.Auth.Refresh)
	app.Post("/logout", cfg.Auth.Logout)

	app.Use("/ws", cfg.Events.Upgrade)
	app.Get("/ws", cfg.Events.Serve())

	protected := app.Group("", cfg.AuthMiddleware.Handle)
	protected.Get("/protected", cfg.Auth.Protected)

	protected.Post("/users", cfg.Users.Create)
	protected.Get("/users", cfg.Users.List)
	protected.Get("/specialists", cfg.Users.ListSpecialists)

	protected.Get("/appointments", cfg.Appointments.List)
	protected.Get("/appointments_by_date/:date", cfg.Appointments.ListByDate)
	protected.Get("/appointments_by_datetime/:datetime", cfg.Appointments.ListByDatetime)
	protected.Get("/appointments_by_timeslot/:date/:time", cfg.Appointments.ListByTimeslot)
	protected.Post("/appointments", cfg.Appointments.Create)
	protected.Put("/appointments/:id/finish", cfg.Appointments.Finish)
	protected.Delete("/appointments/:id", cfg.Appointments.Delete)

	protected.Get("/clients", cfg.Clients.List)
	protected.Post("/clients", cfg.Clients.Create)
	protected.Delete("/clients/:id", cfg.Clients.Delete)

	protected.Get("/expenses", cfg.Expenses.List)
	protected.Post("/expenses", cfg.Expenses.Create)
	protected.Delete("/expenses/:id", cfg.Expenses.Delete)

	protected.Get("/salaries", cfg.Salaries.Compute)
	protected.Post("/salaries", cfg.Salaries.Create)
}
