package cart

// Service applies cart mutations. Every operation loads a fresh copy from the
// store, mutates it and saves it back; nothing is cached between calls.
type Service struct {
	store *Store
}

func NewService(store *Store) *Service { return &Service{store: store} }

func (s *Service) Store() *Store { return s.store }

// AddItem merges cand into the line with the same key, or appends a new line.
// A merge only bumps the quantity; the first snapshot of name and price wins.
func (s *Service) AddItem(cand Candidate) (LineItem, error) {
	items := s.store.Load()
	want := cand.Qty
	if want <= 0 {
		want = 1
	}

	var line LineItem
	if i := items.indexOf(cand.Key()); i >= 0 {
		items[i].Qty = min(MaxQty, items[i].Qty+want)
		line = items[i]
	} else {
		line = LineItem{
			ID:    cand.ID,
			Name:  cand.Name,
			SKU:   cand.SKU,
			Price: clampPrice(cand.Price),
			Image: cand.Image,
			Size:  cand.Size,
			Color: cand.Color,
			Qty:   ClampQty(want),
		}
		items = append(items, line)
	}
	if err := s.store.Save(items); err != nil {
		return LineItem{}, err
	}
	return line, nil
}

// RemoveItem drops the line at index. Out of range is a no-op.
func (s *Service) RemoveItem(index int) error {
	items := s.store.Load()
	if index < 0 || index >= len(items) {
		return nil
	}
	items = append(items[:index], items[index+1:]...)
	return s.store.Save(items)
}

// SetQuantity clamps qty into range and writes it to the line at index.
// A missing line is a no-op.
func (s *Service) SetQuantity(index, qty int) error {
	items := s.store.Load()
	if index < 0 || index >= len(items) {
		return nil
	}
	items[index].Qty = ClampQty(qty)
	return s.store.Save(items)
}

func (s *Service) Clear() error {
	return s.store.Save(Cart{})
}

// Count is the total quantity across lines.
func Count(c Cart) int {
	n := 0
	for _, it := range c {
		n += it.Qty
	}
	return n
}
