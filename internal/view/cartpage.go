package view

import "xtreme/internal/cart"

// CartRow is one rendered line of the cart table. Index addresses the line
// for the stepper and remove controls and is only valid for this render.
type CartRow struct {
	Index     int
	Name      string
	SKU       string
	Image     string
	Variant   string
	Price     string
	Qty       int
	LineTotal string
}

// CartPage is the full cart table. Empty and the table are mutually
// exclusive: exactly one of them is shown.
type CartPage struct {
	Rows   []CartRow
	Empty  bool
	Totals TotalsPanel
}

func NewCartPage() *CartPage { return &CartPage{Empty: true} }

func (p *CartPage) Refresh(s Snapshot) {
	p.Rows = p.Rows[:0]
	p.Empty = len(s.Items) == 0
	if p.Empty {
		p.Totals = TotalsPanel{}
		return
	}
	for i, it := range s.Items {
		p.Rows = append(p.Rows, CartRow{
			Index:     i,
			Name:      it.Name,
			SKU:       it.SKU,
			Image:     it.Image,
			Variant:   cartVariant(it),
			Price:     FormatRUB(it.Price),
			Qty:       it.Qty,
			LineTotal: FormatRUB(cart.LineTotal(it)),
		})
	}
	p.Totals = newTotalsPanel(s.Totals)
}

// ShowTable reports whether the table and totals box are visible.
func (p *CartPage) ShowTable() bool { return !p.Empty }
