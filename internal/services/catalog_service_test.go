// internal/services/catalog_service_test.go
package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/livrestore/storefront/internal/catalog"
	"github.com/livrestore/storefront/internal/models"
)

func TestBrowseIncludesOwnListingsFirst(t *testing.T) {
	sess := newTestSession()
	svc := NewCatalogService()

	sess.AddListing(models.Product{
		ID:    "lp-test",
		Title: "Violão Acústico",
		Price: decimal.RequireFromString("450.00"),
	})

	products := svc.Browse(sess)

	require.Len(t, products, len(catalog.Seed())+1)
	assert.Equal(t, "lp-test", products[0].ID)
}

func TestSearchFiltersAndSwitchesView(t *testing.T) {
	sess := newTestSession()
	svc := NewCatalogService()

	results := svc.Search(sess, "samsung")

	require.Len(t, results, 1)
	assert.Equal(t, "p-1001", results[0].ID)
	assert.Equal(t, "samsung", sess.SearchQuery())
	assert.Equal(t, models.ViewSearch, sess.CurrentView())
}

func TestSearchEmptyQueryReturnsEverything(t *testing.T) {
	sess := newTestSession()
	svc := NewCatalogService()

	results := svc.Search(sess, "")

	assert.Len(t, results, len(catalog.Seed()))
}

func TestGetOpensProductView(t *testing.T) {
	sess := newTestSession()
	svc := NewCatalogService()

	p, err := svc.Get(sess, "p-1002")
	require.NoError(t, err)
	assert.Equal(t, "p-1002", p.ID)

	snap := sess.Snapshot()
	assert.Equal(t, models.ViewProduct, snap.CurrentView)
	require.NotNil(t, snap.SelectedProduct)
	assert.Equal(t, "p-1002", snap.SelectedProduct.ID)
}

func TestGetUnknownProduct(t *testing.T) {
	sess := newTestSession()
	svc := NewCatalogService()

	_, err := svc.Get(sess, "missing")
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Equal(t, models.ViewHome, sess.CurrentView())
}

func TestGetResolvesOwnListing(t *testing.T) {
	sess := newTestSession()
	svc := NewCatalogService()

	sess.AddListing(models.Product{
		ID:    "lp-own",
		Title: "Bicicleta Infantil",
		Price: decimal.RequireFromString("300.00"),
	})

	p, err := svc.Get(sess, "lp-own")
	require.NoError(t, err)
	assert.Equal(t, "Bicicleta Infantil", p.Title)
}
