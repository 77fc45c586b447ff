// internal/services/order_service.go
package services

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/livrestore/storefront/internal/models"
	"github.com/livrestore/storefront/internal/state"
	"github.com/livrestore/storefront/internal/utils"
)

type OrderService struct{}

type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,payment_method"`
}

func NewOrderService() *OrderService {
	return &OrderService{}
}

// Checkout snapshots the cart into a new order, prepends it to the ledger,
// empties the cart and lands on the orders view. Payment is simulated: the
// method is recorded, nothing is charged.
func (s *OrderService) Checkout(sess *state.Session, req *CheckoutRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	orderID, err := utils.GenerateOrderID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate order id: %w", err)
	}

	order, err := sess.Checkout(models.PaymentMethod(req.PaymentMethod), orderID, utils.GenerateTrackingNumber())
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id": order.ID,
		"total":    order.Total.String(),
		"items":    len(order.Items),
		"payment":  order.PaymentMethod,
	}).Info("Order placed")

	return order, nil
}

// List returns the session's orders most-recent-first.
func (s *OrderService) List(sess *state.Session) []models.Order {
	return sess.Orders()
}
