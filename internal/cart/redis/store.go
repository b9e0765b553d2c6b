// Package redis persists cart snapshots as JSON values in Redis, one key
// per slot. Snapshots carry no TTL: a cart survives until the session's
// order is submitted and the slot is overwritten with an empty list.
package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/fursheti/catering-orders/internal/cart"
)

// Store is the Redis implementation of cart.SnapshotStore.
type Store struct {
	client *redis.Client
}

// New connects a store to the Redis server at addr.
func New(addr string) *Store {
	return &Store{client: redis.NewClient(&redis.Options{Addr: addr})}
}

// Ping verifies the connection; called once at startup so a bad address
// degrades the service before the first mutation does.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) key(slot string) string {
	return fmt.Sprintf("cart:slot:%s", slot)
}

// Save overwrites the slot with the given item list.
func (s *Store) Save(ctx context.Context, slot string, items []cart.Item) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("redis: encode snapshot for %q: %w", slot, err)
	}
	if err := s.client.Set(ctx, s.key(slot), payload, 0).Err(); err != nil {
		return fmt.Errorf("redis: save snapshot for %q: %w", slot, err)
	}
	return nil
}

// Load returns the last saved item list for the slot, or
// cart.ErrSnapshotNotFound if the slot has never been written.
func (s *Store) Load(ctx context.Context, slot string) ([]cart.Item, error) {
	payload, err := s.client.Get(ctx, s.key(slot)).Result()
	if err == redis.Nil {
		return nil, cart.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis: load snapshot for %q: %w", slot, err)
	}

	var items []cart.Item
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		return nil, fmt.Errorf("redis: decode snapshot for %q: %w", slot, err)
	}
	return items, nil
}
