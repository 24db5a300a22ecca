package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserIDHeader carries the caller identity set by the upstream auth gateway.
const UserIDHeader = "X-User-ID"

const userIDKey = "user_id"

// RequireUser rejects requests without a caller identity.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(UserIDHeader)
		if userID == "" {
			slog.Warn("request without caller identity",
				"path", c.Request.URL.Path,
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "unauthorized",
				Message: "missing " + UserIDHeader + " header",
			})

			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func callerID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
