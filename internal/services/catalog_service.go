// internal/services/catalog_service.go
package services

import (
	"github.com/livrestore/storefront/internal/catalog"
	"github.com/livrestore/storefront/internal/models"
	"github.com/livrestore/storefront/internal/state"
)

type CatalogService struct{}

func NewCatalogService() *CatalogService {
	return &CatalogService{}
}

// Browse returns the combined catalog: the session's own listings first,
// then the static seed catalog.
func (s *CatalogService) Browse(sess *state.Session) []models.Product {
	return catalog.Combined(sess.Listings())
}

// Search stores the query on the session, switches to the search view and
// returns the filtered subset.
func (s *CatalogService) Search(sess *state.Session, query string) []models.Product {
	sess.Search(query)
	return catalog.Filter(s.Browse(sess), query)
}

// Get resolves a product by id across the combined catalog and opens its
// detail view.
func (s *CatalogService) Get(sess *state.Session, id string) (*models.Product, error) {
	p := catalog.FindByID(s.Browse(sess), id)
	if p == nil {
		return nil, ErrProductNotFound
	}
	sess.SelectProduct(*p)
	return p, nil
}

func (s *CatalogService) Categories() []models.Category {
	return catalog.Categories
}
