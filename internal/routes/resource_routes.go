package routes

import (
	"github.com/gofiber/fiber/v2"

	"eventhub-backend/internal/controllers"
)

func SetupRoutesResource(app *fiber.App, svc Services) {
	res := app.Group("/events/:id/resources")

	res.Get("/", controllers.ListResourcesHandler(svc.Query, svc.Resources))
	res.Put("/", controllers.UpsertResourceHandler(svc.Query, svc.Resources))
	res.Get("/:resource_id", controllers.GetResourceHandler(svc.Query, svc.Resources))
	res.Delete("/:resource_id", controllers.DeleteResourceHandler(svc.Query, svc.Resources))

	// Reservation counter
	res.Post("/:resource_id/reserve", controllers.ReserveResourceHandler(svc.Query, svc.Resources))
	res.Post("/:resource_id/release", controllers.ReleaseResourceHandler(svc.Query, svc.Resources))
}
