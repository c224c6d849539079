package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"eventhub-backend/dto"
	"eventhub-backend/internal/middleware"
	"eventhub-backend/internal/models"
	"eventhub-backend/internal/services"
)

// CreateEventHandler godoc
// @Summary Create an event
// @Description Create a draft event owned by the calling organizer
// @Tags events
// @Accept json
// @Produce json
// @Param body body models.EventInput true "Event fields"
// @Success 201 {object} dto.EventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /events [post]
func CreateEventHandler(catalog *services.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := middleware.CallerFromLocals(c)
		if err != nil {
			return writeError(c, err)
		}
		if caller.Role != models.RoleOrganizer && !caller.IsAdmin() {
			return writeError(c, errForbidden)
		}

		var body models.EventInput
		if err := parseBody(c, &body); err != nil {
			return writeError(c, err)
		}

		ctx, cancel := reqCtx(c)
		defer cancel()

		ev, err := catalog.CreateEvent(ctx, caller.UserID, body)
		if err != nil {
			return writeError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(dto.NewEventResponse(ev))
	}
}

// ListEventsHandler godoc
// @Summary List events
// @Description Page through event summaries (page starts at 0). Non-admins only see their own events.
// @Tags events
// @Produce json
// @Param page query int false "Page, from 0"
// @Param page_size query int false "Page size (1-100)"
// @Param category query string false "Event type"
// @Param organizer_id query string false "Organizer filter (admin only)"
// @Success 200 {object} models.PagedResult[models.EventSummary]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /events [get]
func ListEventsHandler(query *services.EventQueryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := middleware.CallerFromLocals(c)
		if err != nil {
			return writeError(c, err)
		}
		page, err := queryInt(c, "page", 0)
		if err != nil {
			return writeError(c, err)
		}
		size, err := queryInt(c, "page_size", 10)
		if err != nil {
			return writeError(c, err)
		}

		q := models.EventQuery{OrganizerID: caller.UserID, Category: c.Query("category")}
		if caller.IsAdmin() {
			q.OrganizerID = c.Query("organizer_id")
		}

		ctx, cancel := reqCtx(c)
		defer cancel()

		res, err := query.GetPage(ctx, q, page, size)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(res)
	}
}

// ListPublicEventsHandler godoc
// @Summary List public events
// @Description Published, public events only (page starts at 0)
// @Tags public
// @Produce json
// @Param page query int false "Page, from 0"
// @Param page_size query int false "Page size (1-100)"
// @Success 200 {object} models.PagedResult[models.PublicEventSummary]
// @Failure 400 {object} dto.ErrorResponse
// @Router /events/public [get]
func ListPublicEventsHandler(query *services.EventQueryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := queryInt(c, "page", 0)
		if err != nil {
			return writeError(c, err)
		}
		size, err := queryInt(c, "page_size", 10)
		if err != nil {
			return writeError(c, err)
		}

		ctx, cancel := reqCtx(c)
		defer cancel()

		res, err := query.GetPublicPage(ctx, page, size)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(res)
	}
}

// EventsByDateRangeHandler godoc
// @Summary Public events in a date range
// @Description Events whose [start_date, end_date] overlaps [start, end], both ends inclusive
// @Tags public
// @Produce json
// @Param start query string true "YYYY-MM-DD or RFC 3339"
// @Param end query string true "YYYY-MM-DD or RFC 3339"
// @Success 200 {array} models.PublicEventSummary
// @Failure 400 {object} dto.ErrorResponse
// @Router /events/range [get]
func EventsByDateRangeHandler(query *services.EventQueryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start, err := queryTime(c, "start")
		if err != nil {
			return writeError(c, err)
		}
		end, err := queryTime(c, "end")
		if err != nil {
			return writeError(c, err)
		}

		ctx, cancel := reqCtx(c)
		defer cancel()

		events, err := query.GetByDateRange(ctx, start, end)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(events)
	}
}

// GetEventHandler godoc
// @Summary Get an event
// @Description Full event document, for its organizer or an admin
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id} [get]
func GetEventHandler(query *services.EventQueryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := reqCtx(c)
		defer cancel()

		if _, err := manageEvent(ctx, c, query, c.Params("id")); err != nil {
			return writeError(c, err)
		}
		ev, err := query.GetByID(ctx, c.Params("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(dto.NewEventResponse(ev))
	}
}

// GetPublicEventHandler godoc
// @Summary Get a public event
// @Description Public projection; drafts, archived and private events are not found
// @Tags public
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} models.PublicEvent
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id}/public [get]
func GetPublicEventHandler(query *services.EventQueryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := reqCtx(c)
		defer cancel()

		ev, err := query.GetPublicByID(ctx, c.Params("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(ev)
	}
}

// GetEventTitleHandler godoc
// @Summary Get an event title
// @Tags public
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} models.EventTitle
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id}/title [get]
func GetEventTitleHandler(query *services.EventQueryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := reqCtx(c)
		defer cancel()

		t, err := query.GetTitleOnly(ctx, c.Params("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(t)
	}
}

// UpdateEventHandler godoc
// @Summary Replace an event's scalar fields
// @Description Owner, status and nested collections are left untouched
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param body body models.EventInput true "Every scalar field"
// @Success 200 {object} dto.UpdatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id} [put]
func UpdateEventHandler(query *services.EventQueryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.EventPatch
		if err := parseBody(c, &body); err != nil {
			return writeError(c, err)
		}

		ctx, cancel := reqCtx(c)
		defer cancel()

		if _, err := manageEvent(ctx, c, query, c.Params("id")); err != nil {
			return writeError(c, err)
		}
		ok, err := query.Update(ctx, c.Params("id"), body)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(dto.UpdatedResponse{Updated: ok})
	}
}

// DeleteEventHandler godoc
// @Summary Delete an event
// @Description Removes the event with its programs, resources and ticket types. Issued tickets remain.
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.DeletedResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id} [delete]
func DeleteEventHandler(query *services.EventQueryService, catalog *services.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := reqCtx(c)
		defer cancel()

		if _, err := manageEvent(ctx, c, query, c.Params("id")); err != nil {
			return writeError(c, err)
		}
		ok, err := catalog.DeleteEvent(ctx, c.Params("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(dto.DeletedResponse{Deleted: ok})
	}
}

// PublishEventHandler godoc
// @Summary Publish an event
// @Description draft -> published. Publishing again is a no-op; archived events conflict.
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /events/{id}/publish [post]
func PublishEventHandler(query *services.EventQueryService, catalog *services.CatalogService) fiber.Handler {
	return statusHandler(query, catalog.PublishEvent, "published")
}

// ArchiveEventHandler godoc
// @Summary Archive an event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id}/archive [post]
func ArchiveEventHandler(query *services.EventQueryService, catalog *services.CatalogService) fiber.Handler {
	return statusHandler(query, catalog.ArchiveEvent, "archived")
}

func statusHandler(query *services.EventQueryService, apply func(ctx context.Context, id string) error, done string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := reqCtx(c)
		defer cancel()

		if _, err := manageEvent(ctx, c, query, c.Params("id")); err != nil {
			return writeError(c, err)
		}
		if err := apply(ctx, c.Params("id")); err != nil {
			return writeError(c, err)
		}
		return c.JSON(dto.MessageResponse{Message: done})
	}
}
