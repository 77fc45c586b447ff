// internal/models/product.go
package models

import "github.com/shopspring/decimal"

// Product is immutable once created. Seller-created products are prepended to
// the combined catalog view, never mutated in place.
type Product struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Price        decimal.Decimal `json:"price"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	Image        string          `json:"image"`
	Rating       float64         `json:"rating"`
	ReviewsCount int             `json:"reviews_count"`
	Condition    Condition       `json:"condition"`
	IsFlashDeal  bool            `json:"is_flash_deal,omitempty"`
	FreeShipping bool            `json:"free_shipping,omitempty"`
	FullDelivery bool            `json:"full_delivery,omitempty"`
	SellerID     string          `json:"seller_id,omitempty"`
}

// CartItem is a product plus the quantity held in the cart.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// LineTotal is price multiplied by quantity.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}
