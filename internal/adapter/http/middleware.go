package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const identityHeader = "X-User-Id"
const identityLocal = "userID"

// RequireIdentity reads the verified user identity attached by the upstream
// auth layer. Requests without a valid identity are rejected before any
// handler runs.
func RequireIdentity(c *fiber.Ctx) error {
	uid, err := uuid.Parse(c.Get(identityHeader))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	c.Locals(identityLocal, uid)
	return c.Next()
}

func identityFromCtx(c *fiber.Ctx) uuid.UUID {
	uid, _ := c.Locals(identityLocal).(uuid.UUID)
	return uid
}
