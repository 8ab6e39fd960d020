// Package cart keeps the shopping cart: its persisted shape, the merge and
// clamp rules applied on every mutation, and the totals derived from it.
package cart

import "math"

const (
	MinQty = 1
	MaxQty = 999
)

// LineItem is one distinct product configuration. Name, SKU, Image and Price
// are snapshotted when the line is first added.
type LineItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	SKU   string  `json:"sku"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
	Size  string  `json:"size"`
	Color string  `json:"color"`
	Qty   int     `json:"qty"`
}

// Key identifies a line. Empty Size or Color means "not applicable".
type Key struct {
	ID    string
	Size  string
	Color string
}

func (it LineItem) Key() Key { return Key{ID: it.ID, Size: it.Size, Color: it.Color} }

// Cart is the ordered list of lines, in order of first add.
type Cart []LineItem

func (c Cart) indexOf(k Key) int {
	for i, it := range c {
		if it.Key() == k {
			return i
		}
	}
	return -1
}

// Candidate is what a caller asks to add. Qty <= 0 means one.
type Candidate struct {
	ID    string
	Name  string
	SKU   string
	Price float64
	Image string
	Size  string
	Color string
	Qty   int
}

func (c Candidate) Key() Key { return Key{ID: c.ID, Size: c.Size, Color: c.Color} }

// ClampQty forces n into [MinQty, MaxQty].
func ClampQty(n int) int {
	if n < MinQty {
		return MinQty
	}
	if n > MaxQty {
		return MaxQty
	}
	return n
}

func clampPrice(p float64) float64 {
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
		return 0
	}
	return p
}
