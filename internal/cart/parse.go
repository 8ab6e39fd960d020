package cart

import (
	"encoding/json"
	"math"
)

// Parse turns a stored blob into a Cart. It never fails: anything that is
// not a JSON array yields an empty cart, and elements without a string id
// and a numeric qty are dropped.
func Parse(raw string) Cart {
	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elems); err != nil {
		return Cart{}
	}
	out := make(Cart, 0, len(elems))
	for _, el := range elems {
		if it, ok := parseLine(el); ok {
			out = append(out, it)
		}
	}
	return out
}

func parseLine(el json.RawMessage) (LineItem, bool) {
	var m map[string]any
	if err := json.Unmarshal(el, &m); err != nil || m == nil {
		return LineItem{}, false
	}
	id, ok := m["id"].(string)
	if !ok {
		return LineItem{}, false
	}
	qty, ok := m["qty"].(float64)
	if !ok {
		return LineItem{}, false
	}
	price, _ := m["price"].(float64)
	return LineItem{
		ID:    id,
		Name:  str(m["name"]),
		SKU:   str(m["sku"]),
		Price: clampPrice(price),
		Image: str(m["image"]),
		Size:  str(m["size"]),
		Color: str(m["color"]),
		Qty:   qtyFromFloat(qty),
	}, true
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func qtyFromFloat(f float64) int {
	if f >= MaxQty {
		return MaxQty
	}
	if f < MinQty {
		return MinQty
	}
	return int(math.Trunc(f))
}
