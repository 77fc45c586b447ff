// internal/assistant/stub.go
package assistant

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/livrestore/storefront/internal/config"
	"github.com/livrestore/storefront/internal/models"
)

// StubAssistant stands in for the external service when no API key is
// configured, so the demo keeps working offline. Replies are deterministic.
type StubAssistant struct{}

func (StubAssistant) Converse(ctx context.Context, productTitle, message string, history []models.ChatTurn) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"Olá! Sobre %q: o produto está disponível para entrega em Imperatriz. Posso ajudar em algo mais?",
		productTitle,
	), nil
}

func (StubAssistant) DraftListing(ctx context.Context, prompt, imageB64 string) (*ListingDraft, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	title := prompt
	if title == "" {
		title = "Produto em Imperatriz"
	}
	return &ListingDraft{
		Title:          title,
		Description:    "Anúncio gerado automaticamente. Edite a descrição antes de publicar.",
		SuggestedPrice: 99.90,
		Category:       "Casa e Decoração",
		Keywords:       []string{"imperatriz", "local"},
	}, nil
}

// FromConfig picks the real client when an API key is present and the stub
// otherwise.
func FromConfig(cfg config.AssistantConfig) Assistant {
	if cfg.APIKey == "" {
		logrus.Warn("No assistant API key configured, using stub assistant")
		return StubAssistant{}
	}
	return NewGeminiClient(cfg)
}
