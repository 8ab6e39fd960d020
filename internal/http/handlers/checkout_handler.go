package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	applog "xtreme/internal/log"
	"xtreme/internal/view"
)

var checkoutFields = []string{"name", "phone", "email", "address", "comment"}

type CheckoutHandler struct {
	Shop *Shop
}

func (h *CheckoutHandler) View(c *fiber.Ctx) error {
	f := h.Shop.open(c)
	s := view.NewCheckoutSummary("/")
	f.binder.Bind(s)
	return f.page("checkout", fiber.Map{
		"Title":   "Оформление заказа",
		"Summary": s,
		"Form":    view.NewCheckoutForm(nil),
	})
}

// Submit is the demo checkout: the order goes nowhere, the cart is cleared
// and the shopper gets a fresh form.
func (h *CheckoutHandler) Submit(c *fiber.Ctx) error {
	f := h.Shop.open(c)
	values := make(map[string]string, len(checkoutFields))
	for _, k := range checkoutFields {
		values[k] = c.FormValue(k)
	}
	form := view.NewCheckoutForm(values)

	before := f.binder.Refresh()
	err := f.binder.SubmitCheckout(form)
	if err == nil {
		applog.Audit(c, "checkout.demo", map[string]any{
			"ref":   uuid.NewString(),
			"lines": len(before.Items),
			"count": before.Count,
			"total": before.Totals.Total,
		})
	}
	return f.after("checkout.submit", err, "/checkout")
}
