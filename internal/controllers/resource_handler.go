package controllers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"eventhub-backend/dto"
	"eventhub-backend/internal/models"
	"eventhub-backend/internal/services"
)

// manageResource lets event managers through, and suppliers for resources
// carrying their own supplier id.
func manageResource(ctx context.Context, c *fiber.Ctx, query *services.EventQueryService, resources *services.ResourceService, eventID, resourceID string) (models.Caller, error) {
	caller, err := manageEvent(ctx, c, query, eventID)
	if err == nil || !errors.Is(err, errForbidden) || caller.Role != models.RoleSupplier {
		return caller, err
	}
	if resourceID == "" {
		return caller, errForbidden
	}
	r, err := resources.GetByID(ctx, eventID, resourceID)
	if err != nil {
		return caller, err
	}
	if r.SupplierID != caller.UserID {
		return caller, errForbidden
	}
	return caller, nil
}

// ListResourcesHandler godoc
// @Summary List an event's resources
// @Description Page through every resource (page starts at 1)
// @Tags resources
// @Produce json
// @Param id path string true "Event ID"
// @Param page query int false "Page, from 1"
// @Param page_size query int false "Page size (1-100)"
// @Success 200 {object} models.PagedResult[models.Resource]
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id}/resources [get]
func ListResourcesHandler(query *services.EventQueryService, resources *services.ResourceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := queryInt(c, "page", 1)
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
		res, err := resources.ListAll(ctx, c.Params("id"), page, size)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(res)
	}
}

// ListPublicResourcesHandler godoc
// @Summary List an event's public resources
// @Tags public
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {array} models.Resource
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id}/resources/public [get]
func ListPublicResourcesHandler(query *services.EventQueryService, resources *services.ResourceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := reqCtx(c)
		defer cancel()

		if _, err := query.GetPublicByID(ctx, c.Params("id")); err != nil {
			return writeError(c, err)
		}
		list, err := resources.ListPublic(ctx, c.Params("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(list)
	}
}

// GetResourceHandler godoc
// @Summary Get a resource
// @Tags resources
// @Produce json
// @Param id path string true "Event ID"
// @Param resource_id path string true "Resource ID"
// @Success 200 {object} models.Resource
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id}/resources/{resource_id} [get]
func GetResourceHandler(query *services.EventQueryService, resources *services.ResourceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := reqCtx(c)
		defer cancel()

		eventID, resourceID := c.Params("id"), c.Params("resource_id")
		if _, err := manageResource(ctx, c, query, resources, eventID, resourceID); err != nil {
			return writeError(c, err)
		}
		r, err := resources.GetByID(ctx, eventID, resourceID)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(r)
	}
}

// UpsertResourceHandler godoc
// @Summary Create or replace a resource
// @Description No id creates; a known id replaces the element. The reserved count is never taken from input.
// @Tags resources
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param body body models.Resource true "Resource"
// @Success 200 {array} models.Resource
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id}/resources [put]
func UpsertResourceHandler(query *services.EventQueryService, resources *services.ResourceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.Resource
		if err := parseBody(c, &body); err != nil {
			return writeError(c, err)
		}

		ctx, cancel := reqCtx(c)
		defer cancel()

		caller, err := manageResource(ctx, c, query, resources, c.Params("id"), body.ID)
		if err != nil {
			return writeError(c, err)
		}
		if caller.Role == models.RoleSupplier {
			// suppliers can't hand their resources to someone else
			body.SupplierID = caller.UserID
		}

		list, err := resources.Upsert(ctx, c.Params("id"), body)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(list)
	}
}

// DeleteResourceHandler godoc
// @Summary Delete a resource
// @Tags resources
// @Produce json
// @Param id path string true "Event ID"
// @Param resource_id path string true "Resource ID"
// @Success 200 {object} dto.DeletedResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id}/resources/{resource_id} [delete]
func DeleteResourceHandler(query *services.EventQueryService, resources *services.ResourceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := reqCtx(c)
		defer cancel()

		if _, err := manageEvent(ctx, c, query, c.Params("id")); err != nil {
			return writeError(c, err)
		}
		ok, err := resources.Delete(ctx, c.Params("id"), c.Params("resource_id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(dto.DeletedResponse{Deleted: ok})
	}
}

// ReserveResourceHandler godoc
// @Summary Reserve resource units
// @Description Atomically adds to reserved; refused with 409 when it would pass quantity
// @Tags resources
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param resource_id path string true "Resource ID"
// @Param body body dto.QuantityRequest true "Units"
// @Success 200 {object} models.Resource
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /events/{id}/resources/{resource_id}/reserve [post]
func ReserveResourceHandler(query *services.EventQueryService, resources *services.ResourceService) fiber.Handler {
	return quantityHandler(query, resources, resources.IncrementReserved)
}

// ReleaseResourceHandler godoc
// @Summary Release reserved resource units
// @Tags resources
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param resource_id path string true "Resource ID"
// @Param body body dto.QuantityRequest true "Units"
// @Success 200 {object} models.Resource
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id}/resources/{resource_id}/release [post]
func ReleaseResourceHandler(query *services.EventQueryService, resources *services.ResourceService) fiber.Handler {
	return quantityHandler(query, resources, resources.ReleaseReserved)
}

func quantityHandler(query *services.EventQueryService, resources *services.ResourceService, apply func(ctx context.Context, eventID, resourceID string, q int) (bool, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.QuantityRequest
		if err := parseBody(c, &body); err != nil {
			return writeError(c, err)
		}

		ctx, cancel := reqCtx(c)
		defer cancel()

		eventID, resourceID := c.Params("id"), c.Params("resource_id")
		if _, err := manageResource(ctx, c, query, resources, eventID, resourceID); err != nil {
			return writeError(c, err)
		}
		if _, err := apply(ctx, eventID, resourceID, body.Quantity); err != nil {
			return writeError(c, err)
		}
		r, err := resources.GetByID(ctx, eventID, resourceID)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(r)
	}
}
