package routes

import (
	"github.com/gofiber/fiber/v2"

	"eventhub-backend/internal/middleware"
	"eventhub-backend/internal/services"
)

// Services is everything the handlers are built from.
type Services struct {
	Query     *services.EventQueryService
	Catalog   *services.CatalogService
	Resources *services.ResourceService
	Tickets   *services.TicketService
	Analytics *services.AnalyticsService
}

// Setup registers the anonymous routes first so they are matched before
// the RequireAuth gate. JWTCaller must already be installed on app.
func Setup(app *fiber.App, svc Services) {
	SetupPublicRoutes(app, svc)

	app.Use(middleware.RequireAuth())

	SetupRoutesEvent(app, svc)
	SetupRoutesResource(app, svc)
	SetupRoutesTicket(app, svc)
	SetupRoutesAnalytics(app, svc)
}
