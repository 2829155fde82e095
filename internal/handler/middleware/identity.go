package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cosme-store/internal/handler/httperr"
)

// Identity resolution lives at the gateway in front of this service; the
// caller's resolved ID arrives in the X-User-ID header. This middleware
// only parses and propagates it.

const (
	userIDHeader = "X-User-ID"
	ctxUserIDKey = "user_id"
)

func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(userIDHeader)
		if raw == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "X-User-ID header required", nil)
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid X-User-ID header", nil)
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}
