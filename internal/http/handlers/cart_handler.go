package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "xtreme/internal/log"
	"xtreme/internal/validate"
	"xtreme/internal/view"
)

type CartHandler struct {
	Shop *Shop
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	f := h.Shop.open(c)
	p := view.NewCartPage()
	f.binder.Bind(p)
	return f.page("cart", fiber.Map{"Title": "Корзина", "Page": p})
}

// Add handles an "add to cart" control. The form it sits in is its scope:
// size, colour and quantity come from the same form as the button.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	f := h.Shop.open(c)
	back := localPath(c.FormValue("back"), "/")
	id, ok := validate.ID(c.FormValue("product_id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product_id"})
		return f.skip("cart.add", back)
	}
	found, err := f.binder.AddToCart(view.AddRequest{
		ProductID: id,
		Size:      c.FormValue("size"),
		Color:     c.FormValue("color"),
		Qty:       c.FormValue("qty"),
	})
	if !found {
		applog.Info(c, "cart.add.unknown", map[string]any{"product_id": id})
		return f.skip("cart.add", back)
	}
	return f.after("cart.add", err, back)
}

// Qty handles the row stepper: op is inc, dec or set (with qty).
func (h *CartHandler) Qty(c *fiber.Ctx) error {
	f := h.Shop.open(c)
	i, ok := validate.Index(c.FormValue("index"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "index"})
		return f.skip("cart.qty", "/cart")
	}
	if !f.binder.HasLine(i) {
		return f.skip("cart.qty", "/cart")
	}
	var err error
	switch c.FormValue("op") {
	case "inc":
		err = f.binder.Increment(i)
	case "dec":
		err = f.binder.Decrement(i)
	default:
		err = f.binder.SetQuantityText(i, c.FormValue("qty"))
	}
	return f.after("cart.qty", err, "/cart")
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	f := h.Shop.open(c)
	i, ok := validate.Index(c.FormValue("index"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "index"})
		return f.skip("cart.remove", "/cart")
	}
	if !f.binder.HasLine(i) {
		return f.skip("cart.remove", "/cart")
	}
	return f.after("cart.remove", f.binder.Remove(i), "/cart")
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	f := h.Shop.open(c)
	return f.after("cart.clear", f.binder.Clear(), "/cart")
}
