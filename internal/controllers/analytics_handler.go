package controllers

import (
	"github.com/gofiber/fiber/v2"

	"eventhub-backend/internal/middleware"
	"eventhub-backend/internal/models"
	"eventhub-backend/internal/services"
)

// OrganizerAnalyticsHandler godoc
// @Summary Organizer analytics
// @Description Revenue, counters, top-N rankings and a monthly series over the organizer's events, optionally limited to events starting in [from, to)
// @Tags analytics
// @Produce json
// @Param from query string false "YYYY-MM-DD or RFC 3339, inclusive"
// @Param to query string false "YYYY-MM-DD or RFC 3339, exclusive"
// @Param organizer_id query string false "Organizer (admin only)"
// @Success 200 {object} models.OrganizerAnalytics
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /analytics/organizer [get]
func OrganizerAnalyticsHandler(analytics *services.AnalyticsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := middleware.CallerFromLocals(c)
		if err != nil {
			return writeError(c, err)
		}

		organizerID := caller.UserID
		if other := c.Query("organizer_id"); other != "" && other != caller.UserID {
			if !caller.IsAdmin() {
				return writeError(c, errForbidden)
			}
			organizerID = other
		} else if caller.Role != models.RoleOrganizer && !caller.IsAdmin() {
			return writeError(c, errForbidden)
		}

		from, err := queryTime(c, "from")
		if err != nil {
			return writeError(c, err)
		}
		to, err := queryTime(c, "to")
		if err != nil {
			return writeError(c, err)
		}
		var w *models.Window
		if !from.IsZero() || !to.IsZero() {
			w = &models.Window{From: from, To: to}
		}

		ctx, cancel := reqCtx(c)
		defer cancel()

		res, err := analytics.OrganizerRollup(ctx, organizerID, w)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(res)
	}
}
