package cart_test

import (
	"testing"

	"xtreme/internal/cart"
)

func TestComputeTotals(t *testing.T) {
	cfg := cart.DefaultConfig()
	cases := []struct {
		name  string
		items cart.Cart
		want  cart.Totals
	}{
		{
			name:  "above threshold",
			items: cart.Cart{{Price: 1490, Qty: 1}, {Price: 2990, Qty: 1}, {Price: 3990, Qty: 1}},
			want:  cart.Totals{Subtotal: 8470, Discount: 400, Shipping: 0, Total: 8070},
		},
		{
			name:  "below threshold",
			items: cart.Cart{{Price: 1490, Qty: 1}},
			want:  cart.Totals{Subtotal: 1490, Discount: 0, Shipping: 0, Total: 1490},
		},
		{
			name:  "exactly threshold",
			items: cart.Cart{{Price: 2500, Qty: 2}},
			want:  cart.Totals{Subtotal: 5000, Discount: 400, Shipping: 0, Total: 4600},
		},
		{
			name:  "empty",
			items: cart.Cart{},
			want:  cart.Totals{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cart.ComputeTotals(tc.items, cfg); got != tc.want {
				t.Fatalf("want %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestComputeTotals_FloorsAtZero(t *testing.T) {
	cfg := cart.Config{DiscountThreshold: 0, DiscountAmount: 1000, Shipping: 100}
	got := cart.ComputeTotals(cart.Cart{{Price: 200, Qty: 1}}, cfg)
	if got.Total != 0 || got.Shipping != 100 || got.Discount != 1000 {
		t.Fatalf("want total floored to 0, got %+v", got)
	}
}

func TestLineTotal(t *testing.T) {
	if got := cart.LineTotal(cart.LineItem{Price: 0.1, Qty: 3}); got != 0.3 {
		t.Fatalf("want 0.3, got %v", got)
	}
}
