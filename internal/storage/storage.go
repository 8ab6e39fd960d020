// Package storage holds the key-value capability the cart is persisted into.
package storage

import "errors"

// ErrQuotaExceeded is returned by Set when the value does not fit the slot.
var ErrQuotaExceeded = errors.New("storage: quota exceeded")

// Storage is a synchronous string blob store. Implementations may fail on
// write and may hand back anything on read.
type Storage interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}
