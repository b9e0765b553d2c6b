package submit

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fursheti/catering-orders/internal/checkout"
	"github.com/fursheti/catering-orders/internal/pricing"
)

// FormatOrderText renders the canonical plain-text representation of an
// order. Both delivery channels carry exactly this text, so the layout
// is a wire format: optional sections appear only when non-empty and a
// zero delivery fee prints as FREE.
func FormatOrderText(o *checkout.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "ORDER #%s\nLanguage: %s\n\n", o.ID, strings.ToUpper(o.Locale))

	fmt.Fprintf(&b, "CUSTOMER\n%s\n%s\n%s\n\n", o.Customer.Name, o.Customer.Phone, o.Customer.Email)

	fmt.Fprintf(&b, "EVENT\nDate: %s | %s", o.Event.Date, o.Event.StartTime)
	if o.Event.EndTime != "" {
		fmt.Fprintf(&b, " - %s", o.Event.EndTime)
	}
	fmt.Fprintf(&b, "\nGuests: %d\n\n", o.Guests)

	fmt.Fprintf(&b, "ADDRESS\n%s, %s", o.Address.Street, o.Address.Building)
	if o.Address.Apartment != "" {
		fmt.Fprintf(&b, ", apt. %s", o.Address.Apartment)
	}
	b.WriteString("\n")
	if o.Address.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", o.Address.Notes)
	}
	b.WriteString("\n")

	b.WriteString("PRODUCTS\n")
	for _, p := range o.Products {
		fmt.Fprintf(&b, "  %s x%d (%s/%s) = %s\n", p.Name, p.Quantity, money(p.UnitPrice), p.Unit, money(p.LineTotal))
	}
	fmt.Fprintf(&b, "\nFood subtotal: %s\n", money(o.FoodSubtotal))

	if len(o.Inventory) > 0 {
		b.WriteString("\nINVENTORY\n")
		for _, i := range o.Inventory {
			fmt.Fprintf(&b, "  %s x%d (%s) = %s\n", i.Name, i.Quantity, money(i.UnitPrice), money(i.LineTotal))
		}
		fmt.Fprintf(&b, "Inventory subtotal: %s\n", money(o.InventorySubtotal))
	}

	if len(o.Services) > 0 {
		fmt.Fprintf(&b, "\nSERVICES: %s\nServices total: %s\n", strings.Join(o.Services, ", "), money(o.ServicesTotal))
	}

	if o.DeliveryFee.IsZero() {
		b.WriteString("\nDelivery: FREE\n")
	} else {
		fmt.Fprintf(&b, "\nDelivery: %s\n", money(o.DeliveryFee))
	}
	fmt.Fprintf(&b, "GRAND TOTAL: %s\n", money(o.GrandTotal))

	if o.Dietary != "" {
		fmt.Fprintf(&b, "\nDietary/Allergies: %s\n", o.Dietary)
	}
	if o.Comments != "" {
		fmt.Fprintf(&b, "Comments: %s\n", o.Comments)
	}

	return b.String()
}

// money renders an amount with the currency suffix, trimming trailing
// zeros the way the storefront shows prices (3.5₾, 50₾).
func money(d decimal.Decimal) string {
	return d.String() + pricing.Currency
}
