// internal/handlers/session.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/livrestore/storefront/internal/i18n"
	"github.com/livrestore/storefront/internal/middleware"
	"github.com/livrestore/storefront/internal/models"
	"github.com/livrestore/storefront/internal/utils"
)

type SessionHandler struct{}

func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// GET /session
func (h *SessionHandler) GetState(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	utils.SuccessResponse(c, sess.Snapshot())
}

type navigateRequest struct {
	View string `json:"view" validate:"required"`
}

// POST /session/navigate
//
// Navigation never fails for gated views: an unauthenticated attempt at a
// restricted view lands on register, and the resulting view is returned so
// the client can follow the redirect.
func (h *SessionHandler) Navigate(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sess := middleware.SessionFromContext(c)

	var req navigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	target := models.View(req.View)
	if !target.Valid() {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyNavigationInvalidView, req.View), nil)
		return
	}

	result := sess.Navigate(target)
	utils.SuccessResponse(c, gin.H{
		"requested_view": target,
		"current_view":   result,
	})
}
