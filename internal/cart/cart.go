// Package cart owns the buyer's current selection of catalog items. A
// Store is mutated only through its own methods, persists every change
// through a SnapshotStore before returning, and recomputes derived
// totals on every read.
package cart

import (
	"context"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/fursheti/catering-orders/internal/catalog"
)

// Item is one cart line. ProductID is unique within a cart and may
// dangle if the product has since left the catalog; a dangling item is
// tolerated and prices at zero.
type Item struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes,omitempty"`
}

// ItemAddedEvent is published after a successful AddItem.
type ItemAddedEvent struct {
	ProductID string
	Quantity  int
}

// Store is a single session's cart. The mutex keeps each mutation atomic
// with its persistence write; readers of derived totals recompute from
// the current items every time.
type Store struct {
	mu       sync.Mutex
	slot     string
	items    []Item
	products *catalog.Catalog

	snapshots SnapshotStore
	degraded  bool

	subs []func(ItemAddedEvent)
}

// NewStore creates a store for the given snapshot slot and recovers the
// last persisted item list. A missing, unreadable or corrupt snapshot is
// never fatal: the store starts empty and the next mutation overwrites
// the slot.
func NewStore(ctx context.Context, slot string, snapshots SnapshotStore, products *catalog.Catalog) *Store {
	s := &Store{slot: slot, products: products, snapshots: snapshots}

	items, err := snapshots.Load(ctx, slot)
	switch {
	case err == nil:
		s.items = sanitize(items)
	case err != ErrSnapshotNotFound:
		slog.WarnContext(ctx, "cart snapshot unreadable, starting empty", "slot", slot, "error", err)
	}
	return s
}

// sanitize drops lines that violate the at-rest invariants (non-positive
// quantity, duplicate product id).
func sanitize(items []Item) []Item {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, it := range items {
		if it.Quantity <= 0 || it.ProductID == "" || seen[it.ProductID] {
			continue
		}
		seen[it.ProductID] = true
		out = append(out, it)
	}
	return out
}

// OnItemAdded registers an observer for item additions. Subscribers run
// synchronously after the mutation has persisted; they must not call
// back into the store.
func (s *Store) OnItemAdded(fn func(ItemAddedEvent)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// AddItem puts quantity units of a product into the cart. An existing
// line is incremented and keeps its notes; a new line is appended with
// the given notes. Quantities below 1 are clamped to 1.
func (s *Store) AddItem(ctx context.Context, productID string, quantity int, notes string) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity += quantity
			s.persist(ctx)
			s.mu.Unlock()
			s.publish(ItemAddedEvent{ProductID: productID, Quantity: quantity})
			return
		}
	}
	s.items = append(s.items, Item{ProductID: productID, Quantity: quantity, Notes: notes})
	s.persist(ctx)
	s.mu.Unlock()
	s.publish(ItemAddedEvent{ProductID: productID, Quantity: quantity})
}

// RemoveItem deletes the line for the product; absent lines are a no-op.
func (s *Store) RemoveItem(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// UpdateQuantity overwrites the quantity of a line. A quantity of zero
// or less removes the line.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(ctx, productID)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			s.persist(ctx)
			return
		}
	}
}

// UpdateNotes overwrites the notes of a line; absent lines are a no-op.
func (s *Store) UpdateNotes(ctx context.Context, productID, notes string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Notes = notes
			s.persist(ctx)
			return
		}
	}
}

// Clear empties the cart. Called by the checkout flow after a
// successful submission.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persist(ctx)
}

// Items returns a copy of the current lines in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of distinct lines.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// TotalItems returns the sum of all line quantities.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// Subtotal returns the food subtotal of the current lines. A product id
// no longer present in the catalog contributes zero.
func (s *Store) Subtotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, it := range s.items {
		p, ok := s.products.Get(it.ProductID)
		if !ok {
			continue
		}
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// persist writes the full item list to the snapshot slot. Must be called
// with the mutex held. A write failure flips the store into memory-only
// mode for the rest of the session; the mutation itself stands.
func (s *Store) persist(ctx context.Context) {
	if s.degraded {
		return
	}
	if err := s.snapshots.Save(ctx, s.slot, s.items); err != nil {
		slog.WarnContext(ctx, "cart snapshot write failed, continuing in memory only", "slot", s.slot, "error", err)
		s.degraded = true
	}
}

func (s *Store) publish(ev ItemAddedEvent) {
	s.mu.Lock()
	subs := make([]func(ItemAddedEvent), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(ev)
	}
}
