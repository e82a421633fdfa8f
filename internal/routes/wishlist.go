package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stay-haven/stay_haven/internal/wishlist"
)

// RegisterWishlistRoutes wires the authenticated wishlist endpoints.
func RegisterWishlistRoutes(r fiber.Router, h *wishlist.Handler) {
	group := r.Group("/wishlist")
	group.Get("/", h.List)
	group.Post("/:hotelID", h.Add)
	group.Delete("/:hotelID", h.Remove)
}
