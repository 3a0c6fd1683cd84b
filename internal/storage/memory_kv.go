package storage

import "context"

type MemoryKV struct {
	slots map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{slots: make(map[string]string)}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, error) {
	value, ok := m.slots[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (m *MemoryKV) Put(_ context.Context, key, value string) error {
	m.slots[key] = value
	return nil
}

func (m *MemoryKV) Close() error { return nil }
