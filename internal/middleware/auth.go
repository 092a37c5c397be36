package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/calendar-scheduler/internal/auth"
	"github.com/BruksfildServices01/calendar-scheduler/internal/config"
	"github.com/BruksfildServices01/calendar-scheduler/internal/httperr"
)

const ContextUserID = "userID"

// TokenFromRequest reads a bearer token, falling back to the ?token= query
// parameter the browser client sends.
func TokenFromRequest(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	return c.Query("token")
}

// OptionalAuth lets anonymous requests through but rejects invalid tokens.
// A valid token puts its user id in the context.
func OptionalAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" && TokenFromRequest(c) == "" {
			httperr.Unauthorized(c, "invalid_authorization_header", "Malformed Authorization header.")
			c.Abort()
			return
		}

		raw := TokenFromRequest(c)
		if raw == "" {
			c.Next()
			return
		}

		userID, err := auth.ParseToken(raw, cfg.JWTSecret)
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Invalid or expired token.")
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// AuthenticatedUserID returns the token subject set by OptionalAuth.
func AuthenticatedUserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
