package controllers

import (
	"github.com/gofiber/fiber/v2"

	"eventhub-backend/dto"
	"eventhub-backend/internal/models"
	"eventhub-backend/internal/services"
)

// ListProgramsHandler godoc
// @Summary List an event's programs
// @Description Ordered by date; public events only unless the caller manages the event
// @Tags programs
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {array} models.Program
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id}/programs [get]
func ListProgramsHandler(query *services.EventQueryService, catalog *services.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := reqCtx(c)
		defer cancel()

		if _, err := manageEvent(ctx, c, query, c.Params("id")); err != nil {
			if _, perr := query.GetPublicByID(ctx, c.Params("id")); perr != nil {
				return writeError(c, perr)
			}
		}
		list, err := catalog.ListPrograms(ctx, c.Params("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(list)
	}
}

// UpsertProgramHandler godoc
// @Summary Create or replace a program
// @Tags programs
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param body body models.Program true "Program"
// @Success 200 {array} models.Program
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id}/programs [put]
func UpsertProgramHandler(query *services.EventQueryService, catalog *services.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.Program
		if err := parseBody(c, &body); err != nil {
			return writeError(c, err)
		}

		ctx, cancel := reqCtx(c)
		defer cancel()

		if _, err := manageEvent(ctx, c, query, c.Params("id")); err != nil {
			return writeError(c, err)
		}
		list, err := catalog.UpsertProgram(ctx, c.Params("id"), body)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(list)
	}
}

// DeleteProgramHandler godoc
// @Summary Delete a program
// @Tags programs
// @Produce json
// @Param id path string true "Event ID"
// @Param program_id path string true "Program ID"
// @Success 200 {object} dto.DeletedResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id}/programs/{program_id} [delete]
func DeleteProgramHandler(query *services.EventQueryService, catalog *services.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := reqCtx(c)
		defer cancel()

		if _, err := manageEvent(ctx, c, query, c.Params("id")); err != nil {
			return writeError(c, err)
		}
		ok, err := catalog.DeleteProgram(ctx, c.Params("id"), c.Params("program_id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(dto.DeletedResponse{Deleted: ok})
	}
}

// ListTicketTypesHandler godoc
// @Summary List an event's ticket types
// @Tags ticket-types
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {array} models.EventTicket
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id}/ticket-types [get]
func ListTicketTypesHandler(query *services.EventQueryService, catalog *services.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := reqCtx(c)
		defer cancel()

		if _, err := manageEvent(ctx, c, query, c.Params("id")); err != nil {
			return writeError(c, err)
		}
		list, err := catalog.ListTicketTypes(ctx, c.Params("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(list)
	}
}

// GetTicketTypeHandler godoc
// @Summary Get a ticket type
// @Tags ticket-types
// @Produce json
// @Param id path string true "Event ID"
// @Param ticket_type_id path string true "Ticket type ID"
// @Success 200 {object} models.EventTicket
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id}/ticket-types/{ticket_type_id} [get]
func GetTicketTypeHandler(query *services.EventQueryService, catalog *services.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := reqCtx(c)
		defer cancel()

		if _, err := manageEvent(ctx, c, query, c.Params("id")); err != nil {
			return writeError(c, err)
		}
		t, err := catalog.GetTicketType(ctx, c.Params("id"), c.Params("ticket_type_id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(t)
	}
}

// UpsertTicketTypeHandler godoc
// @Summary Create or replace a ticket type
// @Description The sold count is kept from the stored element; quantity below it is rejected
// @Tags ticket-types
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param body body models.EventTicket true "Ticket type"
// @Success 200 {array} models.EventTicket
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id}/ticket-types [put]
func UpsertTicketTypeHandler(query *services.EventQueryService, catalog *services.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.EventTicket
		if err := parseBody(c, &body); err != nil {
			return writeError(c, err)
		}

		ctx, cancel := reqCtx(c)
		defer cancel()

		if _, err := manageEvent(ctx, c, query, c.Params("id")); err != nil {
			return writeError(c, err)
		}
		list, err := catalog.UpsertTicketType(ctx, c.Params("id"), body)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(list)
	}
}

// DeleteTicketTypeHandler godoc
// @Summary Delete a ticket type
// @Tags ticket-types
// @Produce json
// @Param id path string true "Event ID"
// @Param ticket_type_id path string true "Ticket type ID"
// @Success 200 {object} dto.DeletedResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id}/ticket-types/{ticket_type_id} [delete]
func DeleteTicketTypeHandler(query *services.EventQueryService, catalog *services.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := reqCtx(c)
		defer cancel()

		if _, err := manageEvent(ctx, c, query, c.Params("id")); err != nil {
			return writeError(c, err)
		}
		ok, err := catalog.DeleteTicketType(ctx, c.Params("id"), c.Params("ticket_type_id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(dto.DeletedResponse{Deleted: ok})
	}
}
