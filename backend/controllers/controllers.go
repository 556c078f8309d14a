package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// currentUserID reads the authenticated user set by the auth middleware.
func currentUserID(c *fiber.Ctx) uint {
	id, _ := c.Locals("user_id").(uint)
	return id
}

// parseDate accepts a plain date or an RFC3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
