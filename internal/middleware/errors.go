package middleware

import "github.com/gofiber/fiber/v2"

// handled runs the app error handler for err so the final status is known to
// the middleware that observes it.
func handled(c *fiber.Ctx, err error) {
	if err == nil {
		return
	}
	if herr := c.App().ErrorHandler(c, err); herr != nil {
		_ = c.SendStatus(fiber.StatusInternalServerError)
	}
}
