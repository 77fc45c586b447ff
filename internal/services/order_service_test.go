// internal/services/order_service_test.go
package services

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/livrestore/storefront/internal/models"
	"github.com/livrestore/storefront/internal/state"
)

func TestCheckoutPlacesOrder(t *testing.T) {
	sess := newTestSession()
	authSvc := NewAuthService(testConfig())
	cartSvc := NewCartService()
	orderSvc := NewOrderService()

	_, err := authSvc.Login(sess, &LoginRequest{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)
	require.NoError(t, cartSvc.Add(sess, &AddToCartRequest{ProductID: "p-1006"}))
	require.NoError(t, cartSvc.Add(sess, &AddToCartRequest{ProductID: "p-1006"}))

	order, err := orderSvc.Checkout(sess, &CheckoutRequest{PaymentMethod: "pix"})
	require.NoError(t, err)

	assert.Len(t, order.ID, 9)
	assert.True(t, strings.HasPrefix(order.TrackingNumber, "ITZ"))
	assert.Equal(t, models.OrderStatusPreparing, order.Status)
	assert.Equal(t, demoAddress, order.Address)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("379.80")),
		"total = %s", order.Total)

	assert.Empty(t, sess.Cart())
	assert.Equal(t, models.ViewOrders, sess.CurrentView())
	require.Len(t, orderSvc.List(sess), 1)
}

func TestCheckoutRejectsUnknownPaymentMethod(t *testing.T) {
	sess := newTestSession()
	svc := NewOrderService()

	_, err := svc.Checkout(sess, &CheckoutRequest{PaymentMethod: "cheque"})
	assert.Error(t, err)
}

func TestCheckoutWithoutUser(t *testing.T) {
	sess := newTestSession()
	cartSvc := NewCartService()
	orderSvc := NewOrderService()
	require.NoError(t, cartSvc.Add(sess, &AddToCartRequest{ProductID: "p-1001"}))

	_, err := orderSvc.Checkout(sess, &CheckoutRequest{PaymentMethod: "card"})
	assert.ErrorIs(t, err, state.ErrNotAuthenticated)
}

func TestCheckoutEmptyCart(t *testing.T) {
	sess := newTestSession()
	authSvc := NewAuthService(testConfig())
	orderSvc := NewOrderService()

	_, err := authSvc.Login(sess, &LoginRequest{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)

	_, err = orderSvc.Checkout(sess, &CheckoutRequest{PaymentMethod: "boleto"})
	assert.ErrorIs(t, err, state.ErrEmptyCart)
}
