package routes

import (
	"github.com/gofiber/fiber/v2"

	"eventhub-backend/internal/controllers"
)

func SetupPublicRoutes(app *fiber.App, svc Services) {
	event := app.Group("/events")

	// static paths first
	event.Get("/public", controllers.ListPublicEventsHandler(svc.Query))
	event.Get("/range", controllers.EventsByDateRangeHandler(svc.Query))

	event.Get("/:id/public", controllers.GetPublicEventHandler(svc.Query))
	event.Get("/:id/title", controllers.GetEventTitleHandler(svc.Query))
	event.Get("/:id/resources/public", controllers.ListPublicResourcesHandler(svc.Query, svc.Resources))

	// managers see programs of private events too
	event.Get("/:id/programs", controllers.ListProgramsHandler(svc.Query, svc.Catalog))
}
