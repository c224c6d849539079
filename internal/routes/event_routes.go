package routes

import (
	"github.com/gofiber/fiber/v2"

	"eventhub-backend/internal/controllers"
)

func SetupRoutesEvent(app *fiber.App, svc Services) {
	event := app.Group("/events")

	// Event CRUD
	event.Post("/", controllers.CreateEventHandler(svc.Catalog))
	event.Get("/", controllers.ListEventsHandler(svc.Query))
	event.Get("/:id", controllers.GetEventHandler(svc.Query))
	event.Put("/:id", controllers.UpdateEventHandler(svc.Query))
	event.Delete("/:id", controllers.DeleteEventHandler(svc.Query, svc.Catalog))

	// Lifecycle
	event.Post("/:id/publish", controllers.PublishEventHandler(svc.Query, svc.Catalog))
	event.Post("/:id/archive", controllers.ArchiveEventHandler(svc.Query, svc.Catalog))

	// Programs
	event.Put("/:id/programs", controllers.UpsertProgramHandler(svc.Query, svc.Catalog))
	event.Delete("/:id/programs/:program_id", controllers.DeleteProgramHandler(svc.Query, svc.Catalog))

	// Ticket types
	event.Get("/:id/ticket-types", controllers.ListTicketTypesHandler(svc.Query, svc.Catalog))
	event.Get("/:id/ticket-types/:ticket_type_id", controllers.GetTicketTypeHandler(svc.Query, svc.Catalog))
	event.Put("/:id/ticket-types", controllers.UpsertTicketTypeHandler(svc.Query, svc.Catalog))
	event.Delete("/:id/ticket-types/:ticket_type_id", controllers.DeleteTicketTypeHandler(svc.Query, svc.Catalog))

	event.Get("/:id/tickets", controllers.ListEventTicketsHandler(svc.Query, svc.Tickets))
}
