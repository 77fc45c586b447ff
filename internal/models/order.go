// internal/models/order.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a snapshot of the cart at checkout time. Items are deep copies,
// so later cart mutation never alters a placed order. Immutable after
// creation except Status, which nothing in this service transitions.
type Order struct {
	ID             string          `json:"id"`
	Items          []CartItem      `json:"items"`
	Total          decimal.Decimal `json:"total"`
	Status         OrderStatus     `json:"status"`
	Date           time.Time       `json:"date"`
	TrackingNumber string          `json:"tracking_number"`
	Address        string          `json:"address"`
	PaymentMethod  PaymentMethod   `json:"payment_method"`
}
