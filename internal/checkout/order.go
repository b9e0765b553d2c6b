package checkout

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one resolved, priced line of a compiled order. Unit is
// empty for rental and service lines.
type LineItem struct {
	Name      string          `json:"name"`
	Unit      string          `json:"unit,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// Customer identifies the buyer.
type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Event describes when the catering takes place.
type Event struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time,omitempty"`
}

// Address describes where to deliver.
type Address struct {
	Street    string `json:"street"`
	Building  string `json:"building"`
	Apartment string `json:"apartment,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// Order is the fully priced record handed to the submission gateway.
// It is never mutated after compilation; a retry compiles a fresh order
// with a fresh id.
type Order struct {
	ID     string `json:"id"`
	Locale string `json:"locale"`

	Customer Customer `json:"customer"`
	Event    Event    `json:"event"`
	Address  Address  `json:"address"`
	Guests   int      `json:"guests"`

	Products  []LineItem `json:"products"`
	Inventory []LineItem `json:"inventory"`
	Services  []string   `json:"services"`

	FoodSubtotal      decimal.Decimal `json:"food_subtotal"`
	InventorySubtotal decimal.Decimal `json:"inventory_subtotal"`
	ServicesTotal     decimal.Decimal `json:"services_total"`
	DeliveryFee       decimal.Decimal `json:"delivery_fee"`
	GrandTotal        decimal.Decimal `json:"grand_total"`

	Dietary  string `json:"dietary,omitempty"`
	Comments string `json:"comments,omitempty"`
}

var (
	idMu     sync.Mutex
	idLastMs int64
)

// NewOrderID returns a fresh order id of the form FS-<base36 millis>.
// Two compilations inside the same millisecond bump the value so ids
// stay unique and strictly increasing within the process.
func NewOrderID() string {
	idMu.Lock()
	ms := time.Now().UnixMilli()
	if ms <= idLastMs {
		ms = idLastMs + 1
	}
	idLastMs = ms
	idMu.Unlock()

	return "FS-" + strings.ToUpper(strconv.FormatInt(ms, 36))
}
