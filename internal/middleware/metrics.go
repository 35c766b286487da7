package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/linkhub/internal/metrics"
)

// Metrics records request counts and latencies. Requests are labelled with
// the matched route pattern so ids do not inflate label cardinality.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		handled(c, c.Next())

		path := c.Route().Path
		status := c.Response().StatusCode()
		if status == fiber.StatusNotFound && path == "/" && c.Path() != "/" {
			path = "unmatched"
		}
		code := strconv.Itoa(status)

		metrics.HTTPRequestsTotal.WithLabelValues(c.Method(), path, code).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Method(), path, code).Observe(time.Since(start).Seconds())
		return nil
	}
}
