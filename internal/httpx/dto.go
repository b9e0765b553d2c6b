package httpx

import (
	"github.com/shopspring/decimal"

	"github.com/fursheti/catering-orders/internal/checkout"
	"github.com/fursheti/catering-orders/internal/pricing"
	"github.com/fursheti/catering-orders/internal/submit"
)

type AddItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes,omitempty"`
}

// UpdateItemRequest patches a cart line. Nil fields are left untouched;
// a quantity of zero or less removes the line.
type UpdateItemRequest struct {
	Quantity *int    `json:"quantity,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

type CartItemResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit,omitempty"`
	Quantity  int             `json:"quantity"`
	Notes     string          `json:"notes,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	TotalItems int                `json:"total_items"`
	Subtotal   decimal.Decimal    `json:"subtotal"`
}

type CreateOrderRequest struct {
	Locale    string                   `json:"locale"`
	Form      checkout.Form            `json:"form"`
	Inventory map[string]int           `json:"inventory,omitempty"`
	Services  pricing.ServiceSelection `json:"services"`
}

type CreateOrderResponse struct {
	OrderID    string          `json:"order_id"`
	GrandTotal decimal.Decimal `json:"grand_total"`
	Channel    submit.Channel  `json:"channel"`
	ComposeURL string          `json:"compose_url,omitempty"`
}

type ErrorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message,omitempty"`
	Fields  []string `json:"fields,omitempty"`
}
