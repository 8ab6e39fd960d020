package view

import (
	"time"

	"xtreme/internal/cart"
	"xtreme/internal/domain"
	"xtreme/internal/validate"
)

const (
	msgAdded     = "Добавлено в корзину: "
	msgOrdered   = "Заказ оформлен (демо). Корзина очищена."
	msgSaveFails = "Не удалось сохранить корзину. Попробуйте ещё раз."
)

// Catalog resolves a product id to its catalog entry.
type Catalog interface {
	Lookup(id string) (domain.Product, bool)
}

// AddRequest is what an "add to cart" control carries: the product id plus
// whatever size, colour and quantity fields sit in its scope.
type AddRequest struct {
	ProductID string
	Size      string
	Color     string
	Qty       string
}

type Options struct {
	Totals        cart.Config
	Scheduler     Scheduler
	ToastDuration time.Duration
}

// Binder turns user intents into cart operations and refreshes every bound
// surface afterwards. It never edits cart lines itself.
type Binder struct {
	svc      *cart.Service
	catalog  Catalog
	opts     Options
	badges   []*Badge
	surfaces []Surface
	toast    *Toast
}

func NewBinder(svc *cart.Service, catalog Catalog, opts Options) *Binder {
	b := &Binder{svc: svc, catalog: catalog, opts: opts}
	svc.Store().OnSave(b.refreshBadges)
	return b
}

// BindBadge attaches counters that follow every save.
func (b *Binder) BindBadge(badges ...*Badge) { b.badges = append(b.badges, badges...) }

// Bind attaches surfaces that are redrawn after every intent.
func (b *Binder) Bind(s ...Surface) { b.surfaces = append(b.surfaces, s...) }

// Toast returns the shared toast, creating it on first use.
func (b *Binder) Toast() *Toast {
	if b.toast == nil {
		b.toast = newToast(b.opts.Scheduler, b.opts.ToastDuration)
	}
	return b.toast
}

// HasToast reports whether a toast was ever created.
func (b *Binder) HasToast() bool { return b.toast != nil }

func (b *Binder) Notify(msg string) { b.Toast().Show(msg) }

func (b *Binder) refreshBadges(c cart.Cart) {
	snap := NewSnapshot(c, b.opts.Totals)
	for _, bd := range b.badges {
		bd.Refresh(snap)
	}
}

// Refresh reloads the cart and redraws every surface and badge.
func (b *Binder) Refresh() Snapshot {
	snap := NewSnapshot(b.svc.Store().Load(), b.opts.Totals)
	for _, bd := range b.badges {
		bd.Refresh(snap)
	}
	for _, s := range b.surfaces {
		s.Refresh(snap)
	}
	return snap
}

// done refreshes and turns a storage failure into a toast. The error is
// handed back so the caller can log it.
func (b *Binder) done(err error) error {
	if err != nil {
		b.Notify(msgSaveFails)
	}
	b.Refresh()
	return err
}

// AddToCart merges the catalog entry with the requested variant and adds it.
// Unknown products are ignored; the returned bool reports whether anything
// was attempted.
func (b *Binder) AddToCart(req AddRequest) (bool, error) {
	p, ok := b.catalog.Lookup(req.ProductID)
	if !ok {
		return false, nil
	}
	line, err := b.svc.AddItem(cart.Candidate{
		ID:    p.ID,
		Name:  p.Name,
		SKU:   p.SKU,
		Price: p.Price,
		Image: p.Image,
		Size:  validate.Option(req.Size, p.Sizes),
		Color: validate.Option(req.Color, p.Colors),
		Qty:   validate.Qty(req.Qty),
	})
	if err != nil {
		return true, b.done(err)
	}
	b.Notify(msgAdded + line.Name)
	return true, b.done(nil)
}

// HasLine reports whether index addresses a line of the stored cart. Row
// indexes come from an earlier render and may be stale.
func (b *Binder) HasLine(index int) bool {
	return index >= 0 && index < len(b.svc.Store().Load())
}

func (b *Binder) Remove(index int) error {
	return b.done(b.svc.RemoveItem(index))
}

func (b *Binder) Increment(index int) error {
	items := b.svc.Store().Load()
	if index < 0 || index >= len(items) {
		return b.done(nil)
	}
	return b.done(b.svc.SetQuantity(index, items[index].Qty+1))
}

// Decrement never goes below one; removing a line is a separate action.
func (b *Binder) Decrement(index int) error {
	items := b.svc.Store().Load()
	if index < 0 || index >= len(items) {
		return b.done(nil)
	}
	return b.done(b.svc.SetQuantity(index, max(cart.MinQty, items[index].Qty-1)))
}

// SetQuantityText applies a value typed into a row's quantity field.
func (b *Binder) SetQuantityText(index int, raw string) error {
	return b.done(b.svc.SetQuantity(index, validate.Qty(raw)))
}

func (b *Binder) Clear() error {
	return b.done(b.svc.Clear())
}

// SubmitCheckout stands in for placing an order: the cart is emptied and the
// form reset. Nothing leaves the page.
func (b *Binder) SubmitCheckout(form *CheckoutForm) error {
	if err := b.svc.Clear(); err != nil {
		return b.done(err)
	}
	b.Notify(msgOrdered)
	if form != nil {
		form.Reset()
	}
	return b.done(nil)
}
