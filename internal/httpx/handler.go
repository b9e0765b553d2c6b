// Package httpx exposes the catalog, cart and checkout operations as a
// JSON API over chi. It is the only package that knows about HTTP; the
// domain packages never import it.
package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/fursheti/catering-orders/internal/catalog"
	"github.com/fursheti/catering-orders/internal/checkout"
	"github.com/fursheti/catering-orders/internal/pricing"
	"github.com/fursheti/catering-orders/internal/submit"
)

// Handler serves the order composition API.
type Handler struct {
	products *catalog.Catalog
	sessions *Sessions
	compiler *checkout.Compiler
	gateway  *submit.Gateway
}

func NewHandler(products *catalog.Catalog, sessions *Sessions, compiler *checkout.Compiler, gateway *submit.Gateway) *Handler {
	return &Handler{
		products: products,
		sessions: sessions,
		compiler: compiler,
		gateway:  gateway,
	}
}

// ListProducts returns the catalog, optionally filtered by category, tag
// and free-text query.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	products := h.products.Filter(q.Get("category"), q.Get("tag"), q.Get("q"))
	if products == nil {
		products = []catalog.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

// GetProduct returns a single product by id.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, ok := h.products.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "product_not_found", "no product with id "+id)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// ListCategories returns the browsing groups.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.products.Categories())
}

// GetCart returns the session's cart with resolved names and fresh
// totals.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	store := h.sessions.Cart(r)

	items := store.Items()
	resolved := make([]CartItemResponse, 0, len(items))
	for _, it := range items {
		line := CartItemResponse{
			ProductID: it.ProductID,
			Name:      it.ProductID,
			Quantity:  it.Quantity,
			Notes:     it.Notes,
		}
		if p, ok := h.products.Get(it.ProductID); ok {
			line.Name = p.LocalizedName(r.URL.Query().Get("locale"))
			line.Unit = string(p.Unit)
			line.UnitPrice = p.Price
			line.LineTotal = p.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		}
		resolved = append(resolved, line)
	}

	writeJSON(w, http.StatusOK, CartResponse{
		Items:      resolved,
		TotalItems: store.TotalItems(),
		Subtotal:   store.Subtotal(),
	})
}

// AddItem adds a product to the session's cart.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "product_id is required")
		return
	}

	h.sessions.Cart(r).AddItem(r.Context(), req.ProductID, req.Quantity, req.Notes)
	h.GetCart(w, r)
}

// UpdateItem patches the quantity and/or notes of a cart line.
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	store := h.sessions.Cart(r)
	if req.Quantity != nil {
		store.UpdateQuantity(r.Context(), productID, *req.Quantity)
	}
	if req.Notes != nil {
		store.UpdateNotes(r.Context(), productID, *req.Notes)
	}
	h.GetCart(w, r)
}

// RemoveItem deletes a cart line.
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.sessions.Cart(r).RemoveItem(r.Context(), chi.URLParam(r, "productID"))
	h.GetCart(w, r)
}

// ClearCart empties the session's cart.
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.sessions.Cart(r).Clear(r.Context())
	h.GetCart(w, r)
}

// CreateOrder validates the checkout form, compiles the order, submits
// it and clears the cart. An empty cart never reaches the compiler: the
// caller is pointed back to product browsing instead.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.Locale == "" {
		req.Locale = "en"
	}

	store := h.sessions.Cart(r)
	snapshot := store.Items()
	if len(snapshot) == 0 {
		writeError(w, http.StatusConflict, "empty_cart", "add at least one product before checking out")
		return
	}

	inventory := pricing.EmptyInventory()
	for key, qty := range req.Inventory {
		if qty < 0 {
			qty = 0
		}
		inventory[pricing.InventoryKey(key)] = qty
	}

	order, verr := h.compiler.Compile(snapshot, req.Form, inventory, req.Services, req.Locale)
	if verr != nil {
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation_failed",
			Message: verr.Error(),
			Fields:  verr.Fields,
		})
		return
	}

	outcome := h.gateway.Submit(r.Context(), order)

	// Clearing is a separate step owned by this caller, and only after
	// the gateway has accepted the order.
	store.Clear(r.Context())

	slog.InfoContext(r.Context(), "order submitted",
		"order_id", order.ID,
		"channel", outcome.Channel,
		"grand_total", order.GrandTotal.String(),
	)

	writeJSON(w, http.StatusCreated, CreateOrderResponse{
		OrderID:    order.ID,
		GrandTotal: order.GrandTotal,
		Channel:    outcome.Channel,
		ComposeURL: outcome.ComposeURL,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: msg})
}
