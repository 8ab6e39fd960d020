package cart

import (
	"encoding/json"
	"fmt"

	"xtreme/internal/storage"
)

// DefaultKey is the storage slot the cart lives under.
const DefaultKey = "xtreme_cart_v1"

// Store reads and writes the cart blob. Save is the one place every mutation
// passes through, so observers registered with OnSave see all of them.
type Store struct {
	storage   storage.Storage
	key       string
	observers []func(Cart)
}

func NewStore(s storage.Storage, key string) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{storage: s, key: key}
}

// OnSave registers fn to run after every successful Save.
func (s *Store) OnSave(fn func(Cart)) {
	s.observers = append(s.observers, fn)
}

// Load returns the stored cart, or an empty one when the slot is absent,
// unreadable or malformed.
func (s *Store) Load() Cart {
	raw, ok, err := s.storage.Get(s.key)
	if err != nil || !ok || raw == "" {
		return Cart{}
	}
	return Parse(raw)
}

func (s *Store) Save(c Cart) error {
	if c == nil {
		c = Cart{}
	}
	b, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.storage.Set(s.key, string(b)); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	for _, fn := range s.observers {
		fn(c)
	}
	return nil
}
