// internal/assistant/assistant.go
package assistant

import (
	"context"

	"github.com/livrestore/storefront/internal/models"
)

// ListingDraft is the structured suggestion returned by the listing assist.
type ListingDraft struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	SuggestedPrice float64  `json:"suggestedPrice"`
	Category       string   `json:"category"`
	Keywords       []string `json:"keywords,omitempty"`
}

// Assistant is the boundary with the external generative service. Converse
// returns the reply text or an error; an empty reply with a nil error is a
// valid outcome the caller must handle separately. No retry or timeout
// semantics beyond the context belong to this interface.
type Assistant interface {
	Converse(ctx context.Context, productTitle, message string, history []models.ChatTurn) (string, error)
	DraftListing(ctx context.Context, prompt, imageB64 string) (*ListingDraft, error)
}
