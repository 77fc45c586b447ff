// internal/handlers/chat.go
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

type ChatHandler struct {
	chatService *services.ChatService
}

func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// GET /products/:id/chat
func (h *ChatHandler) GetTranscript(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	turns, awaiting := h.chatService.Transcript(sess, c.Param("id"))
	utils.SuccessResponse(c, gin.H{
		"turns":    turns,
		"awaiting": awaiting,
	})
}

// POST /products/:id/chat
func (h *ChatHandler) SendMessage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sess := middleware.SessionFromContext(c)

	var req services.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	turns, err := h.chatService.Send(sess, c.Param("id"), req.Message)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBlankMessage):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationRequired, "message"), nil)
		case errors.Is(err, state.ErrChatBusy):
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyChatBusy))
		case errors.Is(err, state.ErrChatUnavailable):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyChatUnavailable), nil)
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"turns":    turns,
		"awaiting": false,
	})
}
