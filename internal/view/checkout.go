package view

import "xtreme/internal/cart"

type CheckoutRow struct {
	Name      string
	Qty       int
	Variant   string
	LineTotal string
}

// CheckoutSummary is the read-only order list beside the checkout form. When
// the cart is empty it shows a message linking back to CatalogURL and hides
// the totals.
type CheckoutSummary struct {
	Rows       []CheckoutRow
	Empty      bool
	Totals     TotalsPanel
	CatalogURL string
}

func NewCheckoutSummary(catalogURL string) *CheckoutSummary {
	if catalogURL == "" {
		catalogURL = "/"
	}
	return &CheckoutSummary{Empty: true, CatalogURL: catalogURL}
}

func (s *CheckoutSummary) Refresh(snap Snapshot) {
	s.Rows = s.Rows[:0]
	s.Empty = len(snap.Items) == 0
	if s.Empty {
		s.Totals = TotalsPanel{}
		return
	}
	for _, it := range snap.Items {
		s.Rows = append(s.Rows, CheckoutRow{
			Name:      it.Name,
			Qty:       it.Qty,
			Variant:   checkoutVariant(it),
			LineTotal: FormatRUB(cart.LineTotal(it)),
		})
	}
	s.Totals = newTotalsPanel(snap.Totals)
}

// CheckoutForm holds the values typed into the checkout form.
type CheckoutForm struct {
	Values map[string]string
}

func NewCheckoutForm(values map[string]string) *CheckoutForm {
	if values == nil {
		values = map[string]string{}
	}
	return &CheckoutForm{Values: values}
}

func (f *CheckoutForm) Get(field string) string { return f.Values[field] }

// Reset empties every field.
func (f *CheckoutForm) Reset() {
	for k := range f.Values {
		f.Values[k] = ""
	}
}
