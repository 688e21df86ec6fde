package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/prasetyow/nota-spbu-api/internal/presentation/http/middleware"
)

// GetSessionID extracts the session ID from the Gin context. The session
// middleware always sets one, but fall back to the raw header so handlers
// never see an empty key.
func GetSessionID(c *gin.Context) string {
	if v, exists := c.Get("session_id"); exists {
		if id, ok := v.(string); ok && id != "" {
			return id
		}
	}
	return c.GetHeader(middleware.SessionHeader)
}
