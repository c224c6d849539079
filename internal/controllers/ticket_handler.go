package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"eventhub-backend/dto"
	"eventhub-backend/internal/middleware"
	"eventhub-backend/internal/models"
	"eventhub-backend/internal/services"
)

// IssueTicketHandler godoc
// @Summary Buy tickets
// @Description Takes seats from a ticket type of a published event and issues a ticket with a sealed QR payload
// @Tags tickets
// @Accept json
// @Produce json
// @Param body body dto.IssueTicketRequest true "Ticket order"
// @Success 201 {object} dto.TicketResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /tickets [post]
func IssueTicketHandler(tickets *services.TicketService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := middleware.CallerFromLocals(c)
		if err != nil {
			return writeError(c, err)
		}
		var body dto.IssueTicketRequest
		if err := parseBody(c, &body); err != nil {
			return writeError(c, err)
		}

		userID := caller.UserID
		if caller.IsAdmin() && body.UserID != "" {
			userID = body.UserID
		}

		ctx, cancel := reqCtx(c)
		defer cancel()

		t, err := tickets.Issue(ctx, services.IssueInput{
			UserID:       userID,
			EventID:      body.EventID,
			TicketTypeID: body.TicketTypeID,
			Quantity:     body.Quantity,
			Services:     body.Services,
		})
		if err != nil {
			return writeError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(dto.NewTicketResponse(t))
	}
}

// ListMyTicketsHandler godoc
// @Summary List my tickets
// @Description Newest first (page starts at 0)
// @Tags tickets
// @Produce json
// @Param page query int false "Page, from 0"
// @Param page_size query int false "Page size (1-100)"
// @Success 200 {object} models.PagedResult[models.IssuedTicket]
// @Failure 401 {object} dto.ErrorResponse
// @Router /tickets [get]
func ListMyTicketsHandler(tickets *services.TicketService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := middleware.UIDFromLocals(c)
		if err != nil {
			return writeError(c, err)
		}
		page, err := queryInt(c, "page", 0)
		if err != nil {
			return writeError(c, err)
		}
		size, err := queryInt(c, "page_size", 20)
		if err != nil {
			return writeError(c, err)
		}

		ctx, cancel := reqCtx(c)
		defer cancel()

		res, err := tickets.ListByUser(ctx, uid, page, size)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(res)
	}
}

// ListEventTicketsHandler godoc
// @Summary List tickets sold for an event
// @Tags tickets
// @Produce json
// @Param id path string true "Event ID"
// @Param page query int false "Page, from 0"
// @Param page_size query int false "Page size (1-100)"
// @Success 200 {object} models.PagedResult[models.IssuedTicket]
// @Failure 403 {object} dto.ErrorResponse
// @Router /events/{id}/tickets [get]
func ListEventTicketsHandler(query *services.EventQueryService, tickets *services.TicketService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := queryInt(c, "page", 0)
		if err != nil {
			return writeError(c, err)
		}
		size, err := queryInt(c, "page_size", 20)
		if err != nil {
			return writeError(c, err)
		}

		ctx, cancel := reqCtx(c)
		defer cancel()

		if _, err := manageEvent(ctx, c, query, c.Params("id")); err != nil {
			return writeError(c, err)
		}
		res, err := tickets.ListByEvent(ctx, c.Params("id"), page, size)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(res)
	}
}

// GetTicketHandler godoc
// @Summary Get a ticket
// @Description Visible to its holder, the event's organizer and admins
// @Tags tickets
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} dto.TicketResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tickets/{id} [get]
func GetTicketHandler(query *services.EventQueryService, tickets *services.TicketService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := reqCtx(c)
		defer cancel()

		t, err := tickets.Get(ctx, c.Params("id"))
		if err != nil {
			return writeError(c, err)
		}
		if err := canSeeTicket(ctx, c, query, t); err != nil {
			return writeError(c, err)
		}
		return c.JSON(dto.NewTicketResponse(t))
	}
}

// ScanTicketHandler godoc
// @Summary Check a ticket in by id
// @Description One-way: a second scan answers 409
// @Tags tickets
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} dto.TicketResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /tickets/{id}/scan [post]
func ScanTicketHandler(query *services.EventQueryService, tickets *services.TicketService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := reqCtx(c)
		defer cancel()

		t, err := tickets.Get(ctx, c.Params("id"))
		if err != nil {
			return writeError(c, err)
		}
		if _, err := manageEvent(ctx, c, query, t.EventID.Hex()); err != nil {
			return writeError(c, err)
		}
		scanned, err := tickets.Scan(ctx, c.Params("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(dto.NewTicketResponse(scanned))
	}
}

// ScanPayloadHandler godoc
// @Summary Check a ticket in by QR payload
// @Tags tickets
// @Accept json
// @Produce json
// @Param body body dto.ScanRequest true "QR payload"
// @Success 200 {object} dto.TicketResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /tickets/scan [post]
func ScanPayloadHandler(query *services.EventQueryService, tickets *services.TicketService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.ScanRequest
		if err := parseBody(c, &body); err != nil {
			return writeError(c, err)
		}

		ctx, cancel := reqCtx(c)
		defer cancel()

		t, err := tickets.ResolvePayload(ctx, body.Payload)
		if err != nil {
			return writeError(c, err)
		}
		if _, err := manageEvent(ctx, c, query, t.EventID.Hex()); err != nil {
			return writeError(c, err)
		}
		scanned, err := tickets.Scan(ctx, t.ID.Hex())
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(dto.NewTicketResponse(scanned))
	}
}

func canSeeTicket(ctx context.Context, c *fiber.Ctx, query *services.EventQueryService, t *models.IssuedTicket) error {
	caller, err := middleware.CallerFromLocals(c)
	if err != nil {
		return err
	}
	if caller.UserID == t.UserID {
		return nil
	}
	_, err = manageEvent(ctx, c, query, t.EventID.Hex())
	return err
}
