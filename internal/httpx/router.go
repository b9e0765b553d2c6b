package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter mounts the API routes with the standard middleware stack.
func NewRouter(handler *Handler, sessions *Sessions) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(sessions.Middleware)

	r.Get("/products", handler.ListProducts)
	r.Get("/products/{id}", handler.GetProduct)
	r.Get("/categories", handler.ListCategories)

	r.Get("/cart", handler.GetCart)
	r.Post("/cart/items", handler.AddItem)
	r.Patch("/cart/items/{productID}", handler.UpdateItem)
	r.Delete("/cart/items/{productID}", handler.RemoveItem)
	r.Delete("/cart", handler.ClearCart)

	r.Post("/orders", handler.CreateOrder)
	return r
}
