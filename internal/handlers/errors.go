package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

// storeError maps a repository failure to the wire. Unexpected failures pass
// the driver message through; the clients show it verbatim today, so the
// shape is kept even though it leaks internals.
func storeError(c *fiber.Ctx, err error, notFoundMessage string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": notFoundMessage})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
