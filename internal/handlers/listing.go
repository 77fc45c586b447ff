// internal/handlers/listing.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/livrestore/storefront/internal/i18n"
	"github.com/livrestore/storefront/internal/middleware"
	"github.com/livrestore/storefront/internal/services"
	"github.com/livrestore/storefront/internal/utils"
)

type ListingHandler struct {
	listingService *services.ListingService
}

func NewListingHandler(listingService *services.ListingService) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
	}
}

// GET /listings
func (h *ListingHandler) GetListings(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	utils.SuccessResponse(c, gin.H{
		"listings": sess.Listings(),
	})
}

// POST /listings
func (h *ListingHandler) CreateListing(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sess := middleware.SessionFromContext(c)

	if sess.User() == nil {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.listingService.Create(sess, &req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":      i18n.T(lang, i18n.KeyListingCreated),
		"product":      product,
		"current_view": sess.CurrentView(),
	})
}

// POST /listings/draft
func (h *ListingHandler) DraftListing(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sess := middleware.SessionFromContext(c)

	if sess.User() == nil {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.DraftListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	draft, err := h.listingService.Draft(c.Request.Context(), &req)
	if err != nil {
		utils.BadGatewayResponse(c, i18n.T(lang, i18n.KeyListingDraftFailed))
		return
	}

	utils.SuccessResponse(c, gin.H{
		"draft": draft,
	})
}
