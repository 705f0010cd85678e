package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var errNoUser = errors.New("no user in context")

// getUserID reads the authenticated user ID the auth middleware stored.
func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("userID").(string)
	if !ok || raw == "" {
		return uuid.Nil, errNoUser
	}
	return uuid.Parse(raw)
}

// optionalUserID returns the caller's ID when present and nil for anonymous
// requests on optional-auth routes.
func optionalUserID(c *fiber.Ctx) *uuid.UUID {
	id, err := getUserID(c)
	if err != nil {
		return nil
	}
	return &id
}
