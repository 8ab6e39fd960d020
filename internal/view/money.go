// Package view keeps the rendered surfaces of the shop (badge counters, the
// cart table, the checkout summary, the toast) in step with the stored cart.
package view

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const currency = "₽"

// FormatRUB rounds to the nearest whole rouble and groups thousands with
// spaces: 3990 -> "3 990 ₽".
func FormatRUB(n float64) string {
	v := decimal.NewFromFloat(n).Round(0).IntPart()
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	digits := strconv.FormatInt(v, 10)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return sign + b.String() + " " + currency
}

// formatDiscount shows an applied discount as a deduction and a missing one
// as plain zero.
func formatDiscount(n float64) string {
	if n == 0 {
		return "0 " + currency
	}
	return "- " + FormatRUB(n)
}
