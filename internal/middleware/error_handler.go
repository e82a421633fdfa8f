package middleware

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// JSONErrorHandler renders handler errors as JSON bodies. The API speaks JSON
// throughout, including validation and auth failures, so the default
// plain-text rendering is never acceptable.
func JSONErrorHandler(c *fiber.Ctx, err error) error {
	code := http.StatusInternalServerError
	message := "internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return c.Status(code).JSON(fiber.Map{"error": message})
}
