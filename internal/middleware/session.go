// internal/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/livrestore/storefront/internal/state"
)

const SessionHeader = "X-Session-ID"

// SessionAttach resolves the client's session from the X-Session-ID header,
// minting one for new or expired clients, and echoes the id back so the
// client can hold on to it. Every stateful route runs behind this.
func SessionAttach(store *state.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := store.GetOrCreate(c.GetHeader(SessionHeader))
		c.Set("session", sess)
		c.Header(SessionHeader, sess.ID())
		c.Next()
	}
}

// SessionFromContext returns the attached session; handlers behind
// SessionAttach can rely on it being present.
func SessionFromContext(c *gin.Context) *state.Session {
	if v, exists := c.Get("session"); exists {
		if sess, ok := v.(*state.Session); ok {
			return sess
		}
	}
	return nil
}
