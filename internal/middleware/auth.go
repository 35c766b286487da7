package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/linkhub/internal/utils"
)

const subjectContextKey = "adminSubject"

// AuthMiddleware validates admin JWT tokens and stores the token subject in
// the request context.
func AuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid authorization header")
		}

		subject, err := utils.ParseToken(secret, strings.TrimSpace(parts[1]))
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals(subjectContextKey, subject)
		return c.Next()
	}
}

// CurrentSubject extracts the authenticated subject from context.
func CurrentSubject(c *fiber.Ctx) (string, bool) {
	subject, ok := c.Locals(subjectContextKey).(string)
	return subject, ok && subject != ""
}
