package catalog

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the read-only hotel listing endpoint.
type Handler struct {
	catalog *Catalog
}

// NewHandler constructs a catalog HTTP handler.
func NewHandler(catalog *Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// List handles GET /api/hotels with optional area and q filters.
func (h *Handler) List(c *fiber.Ctx) error {
	hotels := h.catalog.List(c.Query("area"), c.Query("q"))
	return c.Status(http.StatusOK).JSON(fiber.Map{"hotels": hotels})
}
