package view

import (
	"strings"

	"xtreme/internal/cart"
)

// Snapshot is what every surface renders from. It is always built from a
// fresh load of the store.
type Snapshot struct {
	Items  cart.Cart   `json:"items"`
	Totals cart.Totals `json:"totals"`
	Count  int         `json:"count"`
}

func NewSnapshot(c cart.Cart, cfg cart.Config) Snapshot {
	if c == nil {
		c = cart.Cart{}
	}
	return Snapshot{Items: c, Totals: cart.ComputeTotals(c, cfg), Count: cart.Count(c)}
}

// Surface is anything on a page that shows cart state.
type Surface interface {
	Refresh(Snapshot)
}

// TotalsPanel is the formatted subtotal/discount/shipping/total block shared
// by the cart and checkout pages.
type TotalsPanel struct {
	Subtotal string
	Discount string
	Shipping string
	Total    string
}

func newTotalsPanel(t cart.Totals) TotalsPanel {
	return TotalsPanel{
		Subtotal: FormatRUB(t.Subtotal),
		Discount: formatDiscount(t.Discount),
		Shipping: FormatRUB(t.Shipping),
		Total:    FormatRUB(t.Total),
	}
}

const variantSep = " • "

// cartVariant labels the size and colour for the cart table, "—" if neither.
func cartVariant(it cart.LineItem) string {
	var parts []string
	if it.Size != "" {
		parts = append(parts, "Размер: "+it.Size)
	}
	if it.Color != "" {
		parts = append(parts, "Цвет: "+it.Color)
	}
	if len(parts) == 0 {
		return "—"
	}
	return strings.Join(parts, variantSep)
}

func checkoutVariant(it cart.LineItem) string {
	var parts []string
	if it.Size != "" {
		parts = append(parts, it.Size)
	}
	if it.Color != "" {
		parts = append(parts, it.Color)
	}
	return strings.Join(parts, variantSep)
}
