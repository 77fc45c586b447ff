// internal/services/listing_service.go
package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/livrestore/storefront/internal/assistant"
	"github.com/livrestore/storefront/internal/catalog"
	"github.com/livrestore/storefront/internal/models"
	"github.com/livrestore/storefront/internal/state"
	"github.com/livrestore/storefront/internal/utils"
)

type ListingService struct {
	assistant assistant.Assistant
}

// CreateListingRequest carries the sell form. Title and price are the only
// required fields; a missing one is a surfaced validation error, not a
// silent drop.
type CreateListingRequest struct {
	Title        string `json:"title" validate:"required"`
	Price        string `json:"price" validate:"required,price"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Condition    string `json:"condition" validate:"omitempty,oneof=new used"`
	FreeShipping bool   `json:"free_shipping"`
	Image        string `json:"image"`
}

type DraftListingRequest struct {
	Prompt string `json:"prompt"`
	Image  string `json:"image"`
}

func NewListingService(a assistant.Assistant) *ListingService {
	return &ListingService{assistant: a}
}

// Create builds a product from the sell form, prepends it to the seller's
// own listings and lands on the seller dashboard.
func (s *ListingService) Create(sess *state.Session, req *CreateListingRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return nil, fmt.Errorf("invalid price: %w", err)
	}

	id, err := utils.GenerateListingID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate listing id: %w", err)
	}

	condition := models.Condition(req.Condition)
	if condition == "" {
		condition = models.ConditionNew
	}

	image := req.Image
	if image == "" {
		image = catalog.PlaceholderImage
	}

	product := models.Product{
		ID:           id,
		Title:        req.Title,
		Price:        price,
		Description:  req.Description,
		Category:     req.Category,
		Image:        image,
		Rating:       5,
		ReviewsCount: 0,
		Condition:    condition,
		FreeShipping: req.FreeShipping,
		FullDelivery: false,
	}
	if user := sess.User(); user != nil {
		product.SellerID = user.ID.String()
	}

	sess.AddListing(product)

	logrus.WithFields(logrus.Fields{
		"listing_id": product.ID,
		"price":      product.Price.String(),
	}).Info("Listing published")

	return &product, nil
}

// Draft asks the assistant for a listing suggestion from a short prompt
// and/or a photo. Failures surface as external-service errors.
func (s *ListingService) Draft(ctx context.Context, req *DraftListingRequest) (*assistant.ListingDraft, error) {
	draft, err := s.assistant.DraftListing(ctx, req.Prompt, req.Image)
	if err != nil {
		logrus.WithError(err).Warn("Listing draft failed")
		return nil, err
	}
	return draft, nil
}
