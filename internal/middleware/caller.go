package middleware

import (
	"github.com/gofiber/fiber/v2"

	"eventhub-backend/internal/models"
)

// UIDFromLocals reads the user_id JWTCaller set.
func UIDFromLocals(c *fiber.Ctx) (string, error) {
	uid, _ := c.Locals("user_id").(string)
	if uid == "" {
		return "", fiber.ErrUnauthorized
	}
	return uid, nil
}

func CallerFromLocals(c *fiber.Ctx) (models.Caller, error) {
	uid, err := UIDFromLocals(c)
	if err != nil {
		return models.Caller{}, err
	}
	role, _ := c.Locals("role").(string)
	return models.Caller{UserID: uid, Role: models.ParseRole(role)}, nil
}
