// internal/services/chat_service.go
package services

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/livrestore/storefront/internal/assistant"
	"github.com/livrestore/storefront/internal/models"
	"github.com/livrestore/storefront/internal/state"
)

// Fixed transcript entries, matching the storefront's seller persona. The
// empty-reply and unreachable cases are distinct outcomes by contract.
const (
	ChatFallbackReply = "Desculpe, não consegui processar sua dúvida."
	ChatUnreachable   = "Erro ao conectar com o vendedor."
)

type ChatService struct {
	assistant assistant.Assistant
}

type SendMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

func NewChatService(a assistant.Assistant) *ChatService {
	return &ChatService{assistant: a}
}

// Send runs one turn of the seller chat: the user turn is appended
// optimistically, the assistant is consulted with the product title and the
// prior transcript, and the reply (or a fixed fallback) is appended before
// the chat returns to idle. A failure of the external call never propagates
// past the transcript entry.
func (s *ChatService) Send(sess *state.Session, productID, message string) ([]models.ChatTurn, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrBlankMessage
	}

	ctx, gen, history, err := sess.BeginChat(productID, message)
	if err != nil {
		return nil, err
	}

	title := ""
	if snap := sess.Snapshot(); snap.SelectedProduct != nil {
		title = snap.SelectedProduct.Title
	}

	reply, err := s.assistant.Converse(ctx, title, message, history)
	content := reply
	switch {
	case err != nil:
		logrus.WithError(err).WithField("product_id", productID).Warn("Seller chat call failed")
		content = ChatUnreachable
	case strings.TrimSpace(reply) == "":
		content = ChatFallbackReply
	}

	if !sess.FinishChat(productID, gen, content) {
		// The client navigated away while the reply was in flight; the
		// transcript died with the product view and the reply is dropped.
		return nil, state.ErrChatUnavailable
	}

	turns, _ := sess.Transcript(productID)
	return turns, nil
}

// Transcript exposes the current transcript plus the awaiting-reply flag.
func (s *ChatService) Transcript(sess *state.Session, productID string) ([]models.ChatTurn, bool) {
	return sess.Transcript(productID)
}
