package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestIDKey is the Locals key carrying the per-request id.
const RequestIDKey = "request_id"

// RequestID tags every request with a uuid, echoed in the response and
// attached to server-side error logs.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(RequestIDKey, id)
		c.Set("X-Request-ID", id)
		return c.Next()
	}
}
