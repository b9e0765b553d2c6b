package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/fursheti/catering-orders/internal/cart"
	"github.com/fursheti/catering-orders/internal/catalog"
	"github.com/fursheti/catering-orders/internal/pricing"
)

// Compiler turns a cart snapshot plus the checkout selections into an
// order. It reads the catalog and the fixed rate card; it never touches
// the cart store itself.
type Compiler struct {
	products *catalog.Catalog
}

func NewCompiler(products *catalog.Catalog) *Compiler {
	return &Compiler{products: products}
}

// Compile validates the form and builds the immutable order: resolved
// food lines, non-zero rental lines, selected service names, the four
// subtotals and the grand total, stamped with a fresh order id.
//
// A product id missing from the catalog keeps its line with the raw id
// as the name and a zero price, so a stale cart still submits.
func (c *Compiler) Compile(
	snapshot []cart.Item,
	form Form,
	inventory pricing.InventorySelection,
	services pricing.ServiceSelection,
	locale string,
) (*Order, *ValidationError) {
	if verr := form.Validate(); verr != nil {
		return nil, verr
	}

	foodSubtotal := decimal.Zero
	products := make([]LineItem, 0, len(snapshot))
	for _, it := range snapshot {
		line := LineItem{Name: it.ProductID, Quantity: it.Quantity}
		if p, ok := c.products.Get(it.ProductID); ok {
			line.Name = p.LocalizedName(locale)
			line.Unit = string(p.Unit)
			line.UnitPrice = p.Price
			line.LineTotal = p.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		}
		foodSubtotal = foodSubtotal.Add(line.LineTotal)
		products = append(products, line)
	}

	var inventoryLines []LineItem
	for _, key := range pricing.InventoryKeys {
		qty := inventory[key]
		if qty <= 0 {
			continue
		}
		unitPrice := pricing.InventoryPrices[key]
		inventoryLines = append(inventoryLines, LineItem{
			Name:      pricing.InventoryName(key, locale),
			Quantity:  qty,
			UnitPrice: unitPrice,
			LineTotal: unitPrice.Mul(decimal.NewFromInt(int64(qty))),
		})
	}

	var serviceNames []string
	for _, svc := range services.Selected() {
		serviceNames = append(serviceNames, pricing.ServiceName(svc, locale))
	}

	inventorySubtotal := pricing.InventorySubtotal(inventory)
	servicesTotal := pricing.ServicesTotal(services)
	deliveryFee := pricing.DeliveryFee(foodSubtotal.Add(inventorySubtotal))

	return &Order{
		ID:     NewOrderID(),
		Locale: locale,
		Customer: Customer{
			Name:  form.Name,
			Phone: form.Phone,
			Email: form.Email,
		},
		Event: Event{
			Date:      form.Date,
			StartTime: form.StartTime,
			EndTime:   form.EndTime,
		},
		Address: Address{
			Street:    form.Street,
			Building:  form.Building,
			Apartment: form.Apartment,
			Notes:     form.AddressNotes,
		},
		Guests:            form.Guests,
		Products:          products,
		Inventory:         inventoryLines,
		Services:          serviceNames,
		FoodSubtotal:      foodSubtotal,
		InventorySubtotal: inventorySubtotal,
		ServicesTotal:     servicesTotal,
		DeliveryFee:       deliveryFee,
		GrandTotal:        pricing.GrandTotal(foodSubtotal, inventorySubtotal, servicesTotal, deliveryFee),
		Dietary:           form.Dietary,
		Comments:          form.Comments,
	}, nil
}
