package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogLookup(t *testing.T) {
	c := Default()

	p, ok := c.Get("salad-caesar")
	require.True(t, ok)
	assert.Equal(t, "Caesar Salad", p.Name["en"])
	assert.Equal(t, UnitTray, p.Unit)
	assert.True(t, p.Price.Equal(price("25")))

	_, ok = c.Get("no-such-product")
	assert.False(t, ok)
}

func TestPricesAreNonNegative(t *testing.T) {
	for _, p := range Default().All() {
		assert.False(t, p.Price.IsNegative(), "product %s has negative price", p.ID)
	}
}

func TestProductIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Default().All() {
		assert.False(t, seen[p.ID], "duplicate product id %s", p.ID)
		seen[p.ID] = true
	}
}

func TestLocalizedName(t *testing.T) {
	c := Default()
	p, _ := c.Get("hot-chicken")

	assert.Equal(t, "Курица гриль", p.LocalizedName("ru"))
	assert.Equal(t, "Grilled Chicken", p.LocalizedName("en"))
	assert.Equal(t, "Grilled Chicken", p.LocalizedName("de"), "unknown locale falls back to en")
}

func TestFilterByCategory(t *testing.T) {
	c := Default()

	for _, p := range c.Filter("drinks", "", "") {
		assert.Equal(t, "drinks", p.Category)
	}
	assert.Len(t, c.Filter("all", "", ""), len(c.All()))
	assert.Empty(t, c.Filter("pizza", "", ""))
}

func TestFilterByTag(t *testing.T) {
	popular := Default().Filter("", "popular", "")
	require.NotEmpty(t, popular)
	for _, p := range popular {
		assert.True(t, p.HasTag("popular"))
	}
}

func TestFilterByQuery(t *testing.T) {
	c := Default()

	hits := c.Filter("", "", "salmon")
	require.NotEmpty(t, hits)
	ids := make([]string, 0, len(hits))
	for _, p := range hits {
		ids = append(ids, p.ID)
	}
	assert.Contains(t, ids, "canape-salmon")
	assert.Contains(t, ids, "hot-salmon")

	// Query matches any localized name, not just English.
	assert.NotEmpty(t, c.Filter("", "", "ლიმონათი"))
}

func TestFilterCombines(t *testing.T) {
	hits := Default().Filter("canapes", "vegan", "")
	require.NotEmpty(t, hits)
	for _, p := range hits {
		assert.Equal(t, "canapes", p.Category)
		assert.True(t, p.HasTag("vegan"))
	}
}

func TestCategoriesIncludeAll(t *testing.T) {
	cats := Default().Categories()
	require.NotEmpty(t, cats)
	assert.Equal(t, "all", cats[0].ID)
}
