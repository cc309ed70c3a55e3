package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

const (
	// DefaultHeader carries the key on API requests.
	DefaultHeader = "X-Press-Sync-Key"
	// DefaultQuery is the query parameter fallback for the key.
	DefaultQuery = "press_sync_key"
)

// Config configures the API key middleware.
type Config struct {
	// ApiKey is the expected key. An empty key disables the check.
	ApiKey string
	// Header overrides DefaultHeader.
	Header string
	// Query overrides DefaultQuery.
	Query string
}

// New returns a middleware rejecting requests without the configured key.
func New(cfg Config) fiber.Handler {
	header := cfg.Header
	if header == "" {
		header = DefaultHeader
	}
	query := cfg.Query
	if query == "" {
		query = DefaultQuery
	}
	expected := []byte(cfg.ApiKey)

	return func(c *fiber.Ctx) error {
		if len(expected) == 0 {
			return c.Next()
		}

		key := c.Get(header)
		if key == "" {
			key = c.Query(query)
		}

		if subtle.ConstantTimeCompare([]byte(key), expected) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or missing Press Sync key",
			})
		}
		return c.Next()
	}
}
