package wishlist

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes wishlist endpoints for the authenticated user.
type Handler struct {
	store  *Store
	logger *slog.Logger
}

// NewHandler constructs a wishlist HTTP handler.
func NewHandler(store *Store, logger *slog.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// List handles GET /api/wishlist.
func (h *Handler) List(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return fiber.NewError(http.StatusUnauthorized, "missing user")
	}
	ids, err := h.store.List(c.UserContext(), userID)
	if err != nil {
		h.logger.Error("wishlist read failed", "user_id", userID, "error", err)
		return fiber.NewError(http.StatusInternalServerError, "internal server error")
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"hotelIds": ids})
}

// Add handles POST /api/wishlist/:hotelID.
func (h *Handler) Add(c *fiber.Ctx) error {
	userID, hotelID, err := h.params(c)
	if err != nil {
		return err
	}
	if err := h.store.Add(c.UserContext(), userID, hotelID); err != nil {
		h.logger.Error("wishlist add failed", "user_id", userID, "hotel_id", hotelID, "error", err)
		return fiber.NewError(http.StatusInternalServerError, "internal server error")
	}
	return c.SendStatus(http.StatusNoContent)
}

// Remove handles DELETE /api/wishlist/:hotelID.
func (h *Handler) Remove(c *fiber.Ctx) error {
	userID, hotelID, err := h.params(c)
	if err != nil {
		return err
	}
	if err := h.store.Remove(c.UserContext(), userID, hotelID); err != nil {
		h.logger.Error("wishlist remove failed", "user_id", userID, "hotel_id", hotelID, "error", err)
		return fiber.NewError(http.StatusInternalServerError, "internal server error")
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *Handler) params(c *fiber.Ctx) (string, int, error) {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return "", 0, fiber.NewError(http.StatusUnauthorized, "missing user")
	}
	hotelID, err := strconv.Atoi(c.Params("hotelID"))
	if err != nil {
		return "", 0, fiber.NewError(http.StatusBadRequest, "hotelID must be numeric")
	}
	return userID, hotelID, nil
}
