// internal/handlers/cart.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/livrestore/storefront/internal/i18n"
	"github.com/livrestore/storefront/internal/middleware"
	"github.com/livrestore/storefront/internal/services"
	"github.com/livrestore/storefront/internal/utils"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	utils.SuccessResponse(c, gin.H{
		"items":    sess.Cart(),
		"subtotal": sess.Subtotal(),
	})
}

// POST /cart
func (h *CartHandler) AddToCart(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sess := middleware.SessionFromContext(c)

	var req services.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if err := h.cartService.Add(sess, &req); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "product")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":      i18n.T(lang, i18n.KeyCartItemAdded),
		"items":        sess.Cart(),
		"subtotal":     sess.Subtotal(),
		"current_view": sess.CurrentView(),
	})
}

// PUT /cart/:id
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sess := middleware.SessionFromContext(c)

	var req services.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if err := h.cartService.UpdateQuantity(sess, c.Param("id"), &req); err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  i18n.T(lang, i18n.KeyCartUpdated),
		"items":    sess.Cart(),
		"subtotal": sess.Subtotal(),
	})
}

// DELETE /cart/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sess := middleware.SessionFromContext(c)

	h.cartService.Remove(sess, c.Param("id"))

	utils.SuccessResponse(c, gin.H{
		"message":  i18n.T(lang, i18n.KeyCartItemRemoved),
		"items":    sess.Cart(),
		"subtotal": sess.Subtotal(),
	})
}
