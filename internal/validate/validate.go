package validate

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"xtreme/internal/cart"
)

var (
	reID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

// Qty coerces a user-typed quantity: non-numeric or below one becomes one,
// anything above the cart maximum is clamped to it. Fractions are dropped.
func Qty(s string) int {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return cart.ClampQty(n)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || f < cart.MinQty {
		return cart.MinQty
	}
	if f > cart.MaxQty {
		return cart.MaxQty
	}
	return int(f)
}

// Index parses a row position sent back by a rendered page.
func Index(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// ID validates a simple resource identifier (product ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Option returns s when it is one of allowed, else "". An empty allowed list
// means the product has no such variant.
func Option(s string, allowed []string) string {
	s = strings.TrimSpace(s)
	for _, a := range allowed {
		if s == a {
			return s
		}
	}
	return ""
}
