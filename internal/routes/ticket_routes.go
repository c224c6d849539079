package routes

import (
	"github.com/gofiber/fiber/v2"

	"eventhub-backend/internal/controllers"
)

func SetupRoutesTicket(app *fiber.App, svc Services) {
	ticket := app.Group("/tickets")

	ticket.Post("/", controllers.IssueTicketHandler(svc.Tickets))
	ticket.Get("/", controllers.ListMyTicketsHandler(svc.Tickets))

	// static path before /:id
	ticket.Post("/scan", controllers.ScanPayloadHandler(svc.Query, svc.Tickets))

	ticket.Get("/:id", controllers.GetTicketHandler(svc.Query, svc.Tickets))
	ticket.Post("/:id/scan", controllers.ScanTicketHandler(svc.Query, svc.Tickets))
}
