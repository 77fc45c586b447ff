// internal/services/chat_service_test.go
package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/livrestore/storefront/internal/models"
	"github.com/livrestore/storefront/internal/state"
)

func openProduct(t *testing.T, sess *state.Session, id string) {
	t.Helper()
	_, err := NewCatalogService().Get(sess, id)
	require.NoError(t, err)
}

func TestChatSend(t *testing.T) {
	sess := newTestSession()
	svc := NewChatService(&fakeAssistant{reply: "Tenho sim, pronta entrega!"})
	openProduct(t, sess, "p-1001")

	turns, err := svc.Send(sess, "p-1001", "Tem na cor preta?")
	require.NoError(t, err)

	require.Len(t, turns, 2)
	assert.Equal(t, models.ChatRoleUser, turns[0].Role)
	assert.Equal(t, "Tem na cor preta?", turns[0].Content)
	assert.Equal(t, models.ChatRoleModel, turns[1].Role)
	assert.Equal(t, "Tenho sim, pronta entrega!", turns[1].Content)

	_, awaiting := svc.Transcript(sess, "p-1001")
	assert.False(t, awaiting)
}

func TestChatSendTrimsAndRejectsBlank(t *testing.T) {
	sess := newTestSession()
	svc := NewChatService(&fakeAssistant{reply: "oi"})
	openProduct(t, sess, "p-1001")

	_, err := svc.Send(sess, "p-1001", "   ")
	assert.ErrorIs(t, err, ErrBlankMessage)

	turns, _ := svc.Transcript(sess, "p-1001")
	assert.Empty(t, turns)
}

func TestChatSendEmptyReplyGetsFallback(t *testing.T) {
	sess := newTestSession()
	svc := NewChatService(&fakeAssistant{reply: "   "})
	openProduct(t, sess, "p-1001")

	turns, err := svc.Send(sess, "p-1001", "Olá")
	require.NoError(t, err)

	require.Len(t, turns, 2)
	assert.Equal(t, ChatFallbackReply, turns[1].Content)
}

func TestChatSendCallFailureGetsUnreachable(t *testing.T) {
	sess := newTestSession()
	svc := NewChatService(&fakeAssistant{err: errors.New("connection refused")})
	openProduct(t, sess, "p-1001")

	turns, err := svc.Send(sess, "p-1001", "Olá")
	require.NoError(t, err)

	// The external failure lands in the transcript, not in the error return.
	require.Len(t, turns, 2)
	assert.Equal(t, models.ChatRoleModel, turns[1].Role)
	assert.Equal(t, ChatUnreachable, turns[1].Content)

	_, awaiting := svc.Transcript(sess, "p-1001")
	assert.False(t, awaiting)
}

func TestChatSendOutsideProductView(t *testing.T) {
	sess := newTestSession()
	svc := NewChatService(&fakeAssistant{reply: "oi"})

	_, err := svc.Send(sess, "p-1001", "Olá")
	assert.ErrorIs(t, err, state.ErrChatUnavailable)
}

func TestChatHistoryAccumulates(t *testing.T) {
	sess := newTestSession()
	fake := &fakeAssistant{reply: "claro"}
	svc := NewChatService(fake)
	openProduct(t, sess, "p-1001")

	_, err := svc.Send(sess, "p-1001", "primeira")
	require.NoError(t, err)
	turns, err := svc.Send(sess, "p-1001", "segunda")
	require.NoError(t, err)

	require.Len(t, turns, 4)
	assert.Equal(t, 2, fake.calls)
}
