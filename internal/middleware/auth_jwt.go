package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"eventhub-backend/internal/models"
)

type Claims struct {
	UID  string `json:"uid,omitempty"`
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTCaller verifies an HS256 bearer token and stores user_id and role in
// Locals. Requests without a bearer header pass through anonymous.
func JWTCaller(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return c.Next()
		}

		tokenStr := strings.TrimSpace(auth[7:])
		var claims Claims

		token, err := jwt.ParseWithClaims(
			tokenStr,
			&claims,
			func(t *jwt.Token) (any, error) {
				return []byte(secret), nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		uid := claims.UID
		if uid == "" {
			uid = claims.Subject
		}
		if uid == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing uid")
		}

		c.Locals("user_id", uid)
		c.Locals("role", string(models.ParseRole(claims.Role)))
		return c.Next()
	}
}

// RequireAuth rejects requests JWTCaller left anonymous.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if uid, _ := c.Locals("user_id").(string); uid == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}
		return c.Next()
	}
}

// SignToken issues an HS256 token in the shape JWTCaller accepts.
func SignToken(secret, uid string, role models.Role, claims jwt.RegisteredClaims) (string, error) {
	claims.Subject = uid
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UID: uid, Role: string(role), RegisteredClaims: claims})
	return token.SignedString([]byte(secret))
}
