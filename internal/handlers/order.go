// internal/handlers/order.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/livrestore/storefront/internal/i18n"
	"github.com/livrestore/storefront/internal/middleware"
	"github.com/livrestore/storefront/internal/services"
	"github.com/livrestore/storefront/internal/state"
	"github.com/livrestore/storefront/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// POST /checkout
func (h *OrderHandler) Checkout(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sess := middleware.SessionFromContext(c)

	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	order, err := h.orderService.Checkout(sess, &req)
	if err != nil {
		switch {
		case errors.Is(err, state.ErrNotAuthenticated):
			utils.UnauthorizedResponse(c, "")
		case errors.Is(err, state.ErrEmptyCart):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyOrderEmptyCart), nil)
		default:
			utils.BadRequestResponse(c, err.Error(), nil)
		}
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":      i18n.T(lang, i18n.KeyOrderPlaced),
		"order":        order,
		"current_view": sess.CurrentView(),
	})
}

// GET /orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	utils.SuccessResponse(c, gin.H{
		"orders": h.orderService.List(sess),
	})
}
