// Package rayid provides request-ID middleware for Fiber.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header carries the ray ID on requests and responses.
const Header = "X-Ray-ID"

// New returns a middleware that ensures every request carries a ray ID.
// An incoming header value is reused so upstream proxies can correlate,
// otherwise a fresh UUID is generated. The ID is stored in Locals under
// "ray_id" for logger.WithRayID and echoed on the response.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
