// Package sqlite persists cart snapshots in a single SQLite table, one
// row per slot. WAL mode is enabled on Open so snapshot reads never block
// the mutation path's writes.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fursheti/catering-orders/internal/cart"

	// Register the pure-Go SQLite driver. modernc.org/sqlite avoids CGO,
	// which keeps Alpine/scratch container builds trivial.
	_ "modernc.org/sqlite"
)

// Each slot holds the full serialized item list; every save overwrites
// the row, matching the snapshot contract.
const schema = `
CREATE TABLE IF NOT EXISTS cart_snapshots (
    slot        TEXT PRIMARY KEY,
    items       TEXT NOT NULL,
    updated_at  TEXT NOT NULL
);
`

// Store is the SQLite implementation of cart.SnapshotStore.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	// busy_timeout waits for locks instead of failing immediately;
	// foreign_keys is on for parity with the rest of the fleet's DBs.
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}

	// SQLite performs best with a single writer connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save overwrites the slot with the given item list.
func (s *Store) Save(ctx context.Context, slot string, items []cart.Item) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("sqlite: encode snapshot for %q: %w", slot, err)
	}

	const q = `
		INSERT INTO cart_snapshots (slot, items, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET
			items = excluded.items,
			updated_at = excluded.updated_at`

	_, err = s.db.ExecContext(ctx, q, slot, string(payload), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("sqlite: save snapshot for %q: %w", slot, err)
	}
	return nil
}

// Load returns the last saved item list for the slot, or
// cart.ErrSnapshotNotFound if the slot has never been written.
func (s *Store) Load(ctx context.Context, slot string) ([]cart.Item, error) {
	const q = `SELECT items FROM cart_snapshots WHERE slot = ?`

	var payload string
	err := s.db.QueryRowContext(ctx, q, slot).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, cart.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: load snapshot for %q: %w", slot, err)
	}

	var items []cart.Item
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		return nil, fmt.Errorf("sqlite: decode snapshot for %q: %w", slot, err)
	}
	return items, nil
}
