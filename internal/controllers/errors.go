package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"eventhub-backend/dto"
	"eventhub-backend/internal/logger"
	"eventhub-backend/internal/models"
)

var errForbidden = fiber.NewError(fiber.StatusForbidden, "forbidden")

// StatusFor maps service errors onto HTTP status codes.
func StatusFor(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, models.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrCapacityExceeded), errors.Is(err, models.ErrInvalidTransition):
		return fiber.StatusConflict
	case errors.Is(err, models.ErrStoreUnavailable):
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}

func writeError(c *fiber.Ctx, err error) error {
	status := StatusFor(err)
	msg := err.Error()
	if status >= fiber.StatusInternalServerError {
		logger.Log.Error("request failed", "method", c.Method(), "path", c.Path(), "err", err)
		msg = "service unavailable"
		if status == fiber.StatusInternalServerError {
			msg = "internal server error"
		}
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: msg})
}

// ErrorHandler is the app-wide fallback for errors handlers return.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return writeError(c, err)
}
