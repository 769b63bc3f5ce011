package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

const (
	rateLimitPeriod = 1 * time.Minute
	rateLimitCount  = 10 // attempts per IP per minute
)

// RateLimiter throttles login attempts per client IP using Redis. When
// Redis is not configured the limiter is a no-op.
func RateLimiter(cache *redis.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cache == nil {
			return c.Next()
		}

		key := "rate_limit:" + c.IP()

		count, err := cache.Incr(c.Context(), key).Result()
		if err != nil {
			// Redis trouble should not lock users out
			return c.Next()
		}

		if count == 1 {
			cache.Expire(c.Context(), key, rateLimitPeriod)
		}

		if count > rateLimitCount {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "too many requests",
			})
		}

		return c.Next()
	}
}
