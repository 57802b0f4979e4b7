// Package auth provides API-key middleware for Fiber.
package auth

import "github.com/gofiber/fiber/v2"

// Header carries the API key on requests.
const Header = "X-Api-Key"

// Config holds the middleware settings.
type Config struct {
	// ApiKey is the expected key. Empty disables the check entirely.
	ApiKey string
}

// New returns a middleware that rejects requests lacking the configured API
// key. When no key is configured the middleware is a no-op, matching the
// open-by-default behavior of local deployments.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" {
			return c.Next()
		}
		if c.Get(Header) != cfg.ApiKey {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or missing api key",
			})
		}
		return c.Next()
	}
}
