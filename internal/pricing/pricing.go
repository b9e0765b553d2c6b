package pricing

import "github.com/shopspring/decimal"

// InventorySelection maps rental items to requested quantities. Absent
// keys count as zero.
type InventorySelection map[InventoryKey]int

// EmptyInventory returns a selection with every rental item at zero.
func EmptyInventory() InventorySelection {
	sel := make(InventorySelection, len(InventoryKeys))
	for _, k := range InventoryKeys {
		sel[k] = 0
	}
	return sel
}

// ServiceSelection holds the boolean add-on flags.
type ServiceSelection struct {
	Setup   bool `json:"setup"`
	Serving bool `json:"serving"`
}

// Selected returns the chosen services in display order.
func (s ServiceSelection) Selected() []Service {
	var out []Service
	if s.Setup {
		out = append(out, ServiceSetup)
	}
	if s.Serving {
		out = append(out, ServiceServing)
	}
	return out
}

// InventorySubtotal sums unit price times quantity over the selection.
// Unknown keys and non-positive quantities contribute nothing.
func InventorySubtotal(sel InventorySelection) decimal.Decimal {
	total := decimal.Zero
	for _, key := range InventoryKeys {
		qty := sel[key]
		if qty <= 0 {
			continue
		}
		total = total.Add(InventoryPrices[key].Mul(decimal.NewFromInt(int64(qty))))
	}
	return total
}

// ServicesTotal sums the fixed fee of every selected service.
func ServicesTotal(sel ServiceSelection) decimal.Decimal {
	total := decimal.Zero
	for _, svc := range sel.Selected() {
		total = total.Add(ServiceFees[svc])
	}
	return total
}

// DeliveryFee returns zero when the combined subtotal reaches the free
// threshold and the base fee otherwise. Combined means food plus
// inventory; the services total is excluded from the comparison.
func DeliveryFee(combinedSubtotal decimal.Decimal) decimal.Decimal {
	if combinedSubtotal.GreaterThanOrEqual(FreeDeliveryThreshold) {
		return decimal.Zero
	}
	return DeliveryBaseFee
}

// GrandTotal is the exact sum of the four order components.
func GrandTotal(foodSubtotal, inventorySubtotal, servicesTotal, deliveryFee decimal.Decimal) decimal.Decimal {
	return foodSubtotal.Add(inventorySubtotal).Add(servicesTotal).Add(deliveryFee)
}
