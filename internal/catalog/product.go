// Package catalog holds the static product reference data. Products are
// seeded once at startup and never mutated; the rest of the system refers
// to them by id only.
package catalog

import "github.com/shopspring/decimal"

// Unit is the sales unit a product is priced by.
type Unit string

const (
	UnitPiece  Unit = "piece"
	UnitTray   Unit = "tray"
	UnitPerson Unit = "person"
	UnitLiter  Unit = "liter"
	UnitKg     Unit = "kg"
)

// Product is a single catalog entry. Name and Description are keyed by
// locale tag (ka/en/ru).
type Product struct {
	ID          string            `json:"id"`
	Name        map[string]string `json:"name"`
	Description map[string]string `json:"description"`
	Category    string            `json:"category"`
	Tags        []string          `json:"tags"`
	Price       decimal.Decimal   `json:"price"`
	Unit        Unit              `json:"unit"`
	Popular     bool              `json:"popular,omitempty"`
	Gradient    string            `json:"gradient"`
}

// LocalizedName returns the product name for the given locale, falling
// back to English when the locale has no entry.
func (p Product) LocalizedName(locale string) string {
	if n, ok := p.Name[locale]; ok && n != "" {
		return n
	}
	return p.Name["en"]
}

// HasTag reports whether the product carries the given tag.
func (p Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Category is a browsing group shown in the menu.
type Category struct {
	ID   string `json:"id"`
	Icon string `json:"icon"`
}
