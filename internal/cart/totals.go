package cart

import "github.com/shopspring/decimal"

// Config holds the pricing knobs. The discount is a cliff: the full amount
// applies once the subtotal reaches the threshold.
type Config struct {
	DiscountThreshold float64
	DiscountAmount    float64
	Shipping          float64
}

func DefaultConfig() Config {
	return Config{DiscountThreshold: 5000, DiscountAmount: 400, Shipping: 0}
}

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

func lineTotal(it LineItem) decimal.Decimal {
	return decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Qty)))
}

// LineTotal is price × qty for a single line.
func LineTotal(it LineItem) float64 { return lineTotal(it).InexactFloat64() }

// ComputeTotals is pure; the total never goes below zero.
func ComputeTotals(c Cart, cfg Config) Totals {
	sub := decimal.Zero
	for _, it := range c {
		sub = sub.Add(lineTotal(it))
	}
	disc := decimal.Zero
	if sub.GreaterThanOrEqual(decimal.NewFromFloat(cfg.DiscountThreshold)) {
		disc = decimal.NewFromFloat(cfg.DiscountAmount)
	}
	ship := decimal.NewFromFloat(cfg.Shipping)
	total := sub.Add(ship).Sub(disc)
	if total.IsNegative() {
		total = decimal.Zero
	}
	return Totals{
		Subtotal: sub.InexactFloat64(),
		Discount: disc.InexactFloat64(),
		Shipping: ship.InexactFloat64(),
		Total:    total.InexactFloat64(),
	}
}
