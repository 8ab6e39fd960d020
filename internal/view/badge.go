package view

import "strconv"

// Badge shows the total quantity in the cart, e.g. the header cart icon.
type Badge struct {
	Text string
}

func NewBadge() *Badge { return &Badge{Text: "0"} }

func (b *Badge) Refresh(s Snapshot) { b.Text = strconv.Itoa(s.Count) }
