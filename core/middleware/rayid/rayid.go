// Package rayid tags every request with a RayID.
//
// The ID is taken from an incoming X-Ray-ID header when present, otherwise generated,
// stored in the Fiber locals under logger.RayIDKey and echoed in the response header.
package rayid

import (
	"forum-provider/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header carries the RayID on requests and responses.
const Header = "X-Ray-ID"

// New returns the RayID middleware.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" || len(rid) > 64 {
			rid = uuid.NewString()
		}
		c.Locals(logger.RayIDKey, rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
