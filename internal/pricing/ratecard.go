// Package pricing implements the pure price calculations for an order:
// rental inventory, fixed-fee services, the tiered delivery fee and the
// grand total. All functions are stateless and side-effect free; money is
// decimal throughout.
package pricing

import "github.com/shopspring/decimal"

// Currency is the suffix appended to every amount in order documents.
const Currency = "₾"

// InventoryKey identifies a rental item.
type InventoryKey string

const (
	InventoryPlates      InventoryKey = "plates"
	InventoryCups        InventoryKey = "cups"
	InventoryCutlery     InventoryKey = "cutlery"
	InventoryTables      InventoryKey = "tables"
	InventoryChairs      InventoryKey = "chairs"
	InventoryTablecloths InventoryKey = "tablecloths"
)

// InventoryKeys lists every rental item in display order.
var InventoryKeys = []InventoryKey{
	InventoryPlates,
	InventoryCups,
	InventoryCutlery,
	InventoryTables,
	InventoryChairs,
	InventoryTablecloths,
}

// Service identifies a fixed-fee add-on.
type Service string

const (
	ServiceSetup   Service = "setup"
	ServiceServing Service = "serving"
)

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// The fixed business price list.
var (
	DeliveryBaseFee       = amount("20")
	FreeDeliveryThreshold = amount("300")

	ServiceFees = map[Service]decimal.Decimal{
		ServiceSetup:   amount("50"),
		ServiceServing: amount("80"),
	}

	InventoryPrices = map[InventoryKey]decimal.Decimal{
		InventoryPlates:      amount("0.5"),
		InventoryCups:        amount("0.5"),
		InventoryCutlery:     amount("0.8"),
		InventoryTables:      amount("15"),
		InventoryChairs:      amount("3"),
		InventoryTablecloths: amount("5"),
	}
)

// Display names for rental items, keyed by locale.
var inventoryNames = map[InventoryKey]map[string]string{
	InventoryPlates:      {"ka": "თეფშები", "en": "Plates", "ru": "Тарелки"},
	InventoryCups:        {"ka": "ჭიქები", "en": "Cups", "ru": "Стаканы"},
	InventoryCutlery:     {"ka": "დანა-ჩანგალი", "en": "Cutlery", "ru": "Приборы"},
	InventoryTables:      {"ka": "მაგიდები", "en": "Tables", "ru": "Столы"},
	InventoryChairs:      {"ka": "სკამები", "en": "Chairs", "ru": "Стулья"},
	InventoryTablecloths: {"ka": "სუფრები", "en": "Tablecloths", "ru": "Скатерти"},
}

// Display names for services, keyed by locale.
var serviceNames = map[Service]map[string]string{
	ServiceSetup:   {"ka": "გაშლა და მომზადება", "en": "Setup & Arrangement", "ru": "Сервировка"},
	ServiceServing: {"ka": "მომსახურე პერსონალი", "en": "Serving Staff", "ru": "Обслуживающий персонал"},
}

// InventoryName returns the display name of a rental item for the given
// locale, falling back to English.
func InventoryName(key InventoryKey, locale string) string {
	names := inventoryNames[key]
	if n, ok := names[locale]; ok && n != "" {
		return n
	}
	return names["en"]
}

// ServiceName returns the display name of a service for the given locale,
// falling back to English.
func ServiceName(svc Service, locale string) string {
	names := serviceNames[svc]
	if n, ok := names[locale]; ok && n != "" {
		return n
	}
	return names["en"]
}
