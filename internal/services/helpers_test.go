// internal/services/helpers_test.go
package services

import (
	"context"
	"errors"
	"time"

	"github.com/livrestore/storefront/internal/assistant"
	"github.com/livrestore/storefront/internal/config"
	"github.com/livrestore/storefront/internal/models"
	"github.com/livrestore/storefront/internal/state"
)

func newTestSession() *state.Session {
	return state.NewStore(time.Hour, time.Hour).Create()
}

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey:       "test-secret",
			AccessTokenTTL:  1,
			RefreshTokenTTL: 24,
		},
	}
}

// fakeAssistant scripts the external generative service for chat and draft
// tests. Zero value replies with a canned answer.
type fakeAssistant struct {
	reply string
	err   error
	draft *assistant.ListingDraft
	calls int
}

func (f *fakeAssistant) Converse(ctx context.Context, productTitle, message string, history []models.ChatTurn) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeAssistant) DraftListing(ctx context.Context, prompt, imageB64 string) (*assistant.ListingDraft, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.draft != nil {
		return f.draft, nil
	}
	return nil, errors.New("no draft scripted")
}
