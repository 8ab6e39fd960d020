package storage

import "sync"

// Memory keeps blobs in a map. Quota limits the size of a single value; zero
// means unlimited.
type Memory struct {
	Quota int

	mu   sync.Mutex
	data map[string]string
}

func NewMemory() *Memory { return &Memory{data: map[string]string{}} }

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	if m.Quota > 0 && len(value) > m.Quota {
		return ErrQuotaExceeded
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = map[string]string{}
	}
	m.data[key] = value
	return nil
}

func (m *Memory) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
