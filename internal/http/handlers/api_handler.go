package handlers

import "github.com/gofiber/fiber/v2"

type APIHandler struct {
	Shop *Shop
}

// Cart returns the shopper's cart with totals and the badge count.
func (h *APIHandler) Cart(c *fiber.Ctx) error {
	snap := h.Shop.open(c).binder.Refresh()
	return c.JSON(snap)
}
