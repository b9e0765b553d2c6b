package httpx

import (
	"context"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/fursheti/catering-orders/internal/cart"
	"github.com/fursheti/catering-orders/internal/catalog"
)

const sessionCookie = "cart_session"

// contextKey avoids collisions with context values set by other packages.
type contextKey string

const contextKeySession contextKey = "cart_session"

// Sessions hands out one cart store per browser session. Stores are
// created lazily on first use and recover their snapshot from the
// session's slot.
type Sessions struct {
	mu        sync.Mutex
	stores    map[string]*cart.Store
	snapshots cart.SnapshotStore
	products  *catalog.Catalog
}

func NewSessions(snapshots cart.SnapshotStore, products *catalog.Catalog) *Sessions {
	return &Sessions{
		stores:    make(map[string]*cart.Store),
		snapshots: snapshots,
		products:  products,
	}
}

// Middleware ensures every request carries a session id, minting a new
// cookie when the client has none.
func (s *Sessions) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
			id = c.Value
		}
		if id == "" {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), contextKeySession, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Cart returns the store for the request's session.
func (s *Sessions) Cart(r *http.Request) *cart.Store {
	id, _ := r.Context().Value(contextKeySession).(string)
	if id == "" {
		id = "anonymous"
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if store, ok := s.stores[id]; ok {
		return store
	}
	store := cart.NewStore(r.Context(), id, s.snapshots, s.products)
	s.stores[id] = store
	return store
}
