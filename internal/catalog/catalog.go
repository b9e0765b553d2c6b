package catalog

import "strings"

// Catalog is the read-only product lookup. Built once, safe for
// concurrent readers.
type Catalog struct {
	byID    map[string]Product
	ordered []Product
}

// New builds a catalog from the given products. Later duplicates of an
// id silently win; the seed data has none.
func New(products []Product) *Catalog {
	c := &Catalog{
		byID:    make(map[string]Product, len(products)),
		ordered: make([]Product, len(products)),
	}
	copy(c.ordered, products)
	for _, p := range products {
		c.byID[p.ID] = p
	}
	return c
}

// Default returns the catalog seeded with the fixed product list.
func Default() *Catalog {
	return New(seedProducts)
}

// Get looks up a product by id.
func (c *Catalog) Get(id string) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// All returns every product in seed order.
func (c *Catalog) All() []Product {
	out := make([]Product, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Categories returns the fixed browsing groups.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(seedCategories))
	copy(out, seedCategories)
	return out
}

// Filter returns products matching all of the given criteria. Empty (or
// "all" for category) criteria match everything. The free-text query is
// matched case-insensitively against every localized name.
func (c *Catalog) Filter(category, tag, query string) []Product {
	query = strings.ToLower(strings.TrimSpace(query))

	var out []Product
	for _, p := range c.ordered {
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		if tag != "" && !p.HasTag(tag) {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesQuery(p Product, query string) bool {
	for _, name := range p.Name {
		if strings.Contains(strings.ToLower(name), query) {
			return true
		}
	}
	return false
}
