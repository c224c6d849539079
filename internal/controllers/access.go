package controllers

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"eventhub-backend/internal/middleware"
	"eventhub-backend/internal/models"
	"eventhub-backend/internal/services"
)

var requestTimeout = 10 * time.Second

// SetRequestTimeout bounds every store round trip a handler makes.
func SetRequestTimeout(d time.Duration) {
	if d > 0 {
		requestTimeout = d
	}
}

func reqCtx(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), requestTimeout)
}

// manageEvent loads the caller and checks they may mutate the event.
func manageEvent(ctx context.Context, c *fiber.Ctx, q *services.EventQueryService, eventID string) (models.Caller, error) {
	caller, err := middleware.CallerFromLocals(c)
	if err != nil {
		return caller, err
	}
	owner, err := q.OwnerOf(ctx, eventID)
	if err != nil {
		return caller, err
	}
	if !caller.CanManage(owner) {
		return caller, errForbidden
	}
	return caller, nil
}

func queryInt(c *fiber.Ctx, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, models.Invalid(key, "must be an integer")
	}
	return n, nil
}

// queryTime accepts YYYY-MM-DD or RFC 3339.
func queryTime(c *fiber.Ctx, key string) (time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, models.Invalid(key, "must be YYYY-MM-DD or RFC 3339")
	}
	return t.UTC(), nil
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return models.Invalid("body", "invalid request body")
	}
	return nil
}
