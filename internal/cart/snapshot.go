package cart

import (
	"context"
	"errors"
	"sync"
)

// ErrSnapshotNotFound is returned by Load when the slot has never been
// written. Callers start from an empty cart.
var ErrSnapshotNotFound = errors.New("cart: snapshot not found")

// SnapshotStore persists the full item list of a cart under a named slot.
// Save overwrites the slot; Load returns the last saved list.
type SnapshotStore interface {
	Load(ctx context.Context, slot string) ([]Item, error)
	Save(ctx context.Context, slot string, items []Item) error
}

// MemoryStore is a SnapshotStore kept entirely in process memory. It
// backs tests and the degraded mode used when no durable backend opens.
type MemoryStore struct {
	mu    sync.Mutex
	slots map[string][]Item
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]Item)}
}

func (m *MemoryStore) Load(_ context.Context, slot string) ([]Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items, ok := m.slots[slot]
	if !ok {
		return nil, ErrSnapshotNotFound
	}
	out := make([]Item, len(items))
	copy(out, items)
	return out, nil
}

func (m *MemoryStore) Save(_ context.Context, slot string, items []Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	saved := make([]Item, len(items))
	copy(saved, items)
	m.slots[slot] = saved
	return nil
}
