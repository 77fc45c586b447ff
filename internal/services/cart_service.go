// internal/services/cart_service.go
package services

import (
	"fmt"

	"github.com/livrestore/storefront/internal/catalog"
	"github.com/livrestore/storefront/internal/state"
	"github.com/livrestore/storefront/internal/utils"
)

type CartService struct{}

type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

func NewCartService() *CartService {
	return &CartService{}
}

// Add merges the product into the cart (quantity +1 when already present)
// and navigates to the cart view.
func (s *CartService) Add(sess *state.Session, req *AddToCartRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	p := catalog.FindByID(catalog.Combined(sess.Listings()), req.ProductID)
	if p == nil {
		return ErrProductNotFound
	}

	sess.AddToCart(*p)
	return nil
}

// Remove deletes the line item; unknown ids are a no-op.
func (s *CartService) Remove(sess *state.Session, productID string) {
	sess.RemoveFromCart(productID)
}

// UpdateQuantity sets the quantity for an existing line. Quantities below
// one are rejected rather than silently corrupting the subtotal; unknown
// ids remain a no-op.
func (s *CartService) UpdateQuantity(sess *state.Session, productID string, req *UpdateQuantityRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	sess.UpdateQuantity(productID, req.Quantity)
	return nil
}
