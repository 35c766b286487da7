package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/example/linkhub/internal/logger"
)

// Logging logs every completed request with zap.
func Logging() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		handled(c, c.Next())

		status := c.Response().StatusCode()
		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote_addr", c.IP()),
		}
		if subject, ok := CurrentSubject(c); ok {
			fields = append(fields, zap.String("subject", subject))
		}
		if status >= fiber.StatusInternalServerError {
			logger.Warn("request failed", fields...)
		} else {
			logger.Info("request completed", fields...)
		}
		return nil
	}
}
