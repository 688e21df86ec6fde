package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHeader carries the client's session key. The transaction model is
// session-scoped: each session holds one live transaction in memory.
const SessionHeader = "X-Session-ID"

// SessionMiddleware ensures every request carries a session ID. Clients that
// do not send one are issued a fresh ID, echoed back in the response header
// so they can stick to it.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			sessionID = uuid.New().String()
		}
		c.Set("session_id", sessionID)
		c.Header(SessionHeader, sessionID)
		c.Next()
	}
}
