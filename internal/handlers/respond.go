package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/cliptube/cliptube-backend/internal/apperr"
)

// writeError maps a service error to the response. Recoverable kinds keep
// their message; anything else is logged and hidden behind a generic 500.
func writeError(c *fiber.Ctx, err error) error {
	status := apperr.Status(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		slog.Error("unhandled service error",
			"method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}
	return c.Status(status).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error":   true,
		"message": "Unauthorized",
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}

// page/limit query parsing shared by every list endpoint.
func pagination(c *fiber.Ctx) (int, int) {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}
	return page, limit
}

func totalPages(total int64, limit int) int64 {
	return (total + int64(limit) - 1) / int64(limit)
}
