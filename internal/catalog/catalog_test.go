// internal/catalog/catalog_test.go
package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/livrestore/storefront/internal/models"
)

func TestSeedReturnsCopy(t *testing.T) {
	a := Seed()
	require.NotEmpty(t, a)

	a[0].Title = "mutated"
	b := Seed()
	assert.NotEqual(t, "mutated", b[0].Title)
}

func TestCombinedListingsFirst(t *testing.T) {
	own := []models.Product{
		{ID: "lp-abc", Title: "Violão Acústico", Price: decimal.RequireFromString("450.00")},
	}

	combined := Combined(own)

	require.Len(t, combined, len(Seed())+1)
	assert.Equal(t, "lp-abc", combined[0].ID)
	assert.Equal(t, Seed()[0].ID, combined[1].ID)
}

func TestCombinedWithoutListings(t *testing.T) {
	combined := Combined(nil)
	assert.Equal(t, Seed(), combined)
}

func TestFilterEmptyQueryMatchesAll(t *testing.T) {
	products := Seed()
	got := Filter(products, "")
	assert.Equal(t, products, got)
}

func TestFilterMatchesTitleCaseInsensitive(t *testing.T) {
	got := Filter(Seed(), "SAMSUNG")

	require.Len(t, got, 1)
	assert.Equal(t, "p-1001", got[0].ID)
}

func TestFilterMatchesCategory(t *testing.T) {
	got := Filter(Seed(), "games")

	require.NotEmpty(t, got)
	for _, p := range got {
		assert.Equal(t, "Games", p.Category)
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	products := []models.Product{
		{ID: "a", Title: "Cadeira Gamer"},
		{ID: "b", Title: "Mesa de Escritório"},
		{ID: "c", Title: "Mousepad Gamer"},
	}

	got := Filter(products, "gamer")

	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestFilterNoMatches(t *testing.T) {
	got := Filter(Seed(), "inexistente-xyz")
	assert.Empty(t, got)
}

func TestFindByID(t *testing.T) {
	products := Seed()

	p := FindByID(products, "p-1003")
	require.NotNil(t, p)
	assert.Equal(t, "Notebook Dell Inspiron 15 i5 16GB SSD 512GB", p.Title)

	assert.Nil(t, FindByID(products, "missing"))
}

func TestFindByIDReturnsCopy(t *testing.T) {
	products := Seed()

	p := FindByID(products, "p-1001")
	require.NotNil(t, p)
	p.Title = "mutated"

	assert.NotEqual(t, "mutated", products[0].Title)
}
