package routes

import (
	"github.com/gofiber/fiber/v2"

	"eventhub-backend/internal/controllers"
)

func SetupRoutesAnalytics(app *fiber.App, svc Services) {
	app.Get("/analytics/organizer", controllers.OrganizerAnalyticsHandler(svc.Analytics))
}
