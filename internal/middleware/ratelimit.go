package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/calendar-scheduler/internal/httperr"
	"github.com/BruksfildServices01/calendar-scheduler/internal/ratelimit"
)

// RateLimit throttles by client IP. Limiter failures let the request through.
func RateLimit(l ratelimit.Limiter, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.FullPath() + "|" + c.ClientIP()

		ok, err := l.Allow(c.Request.Context(), key)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("rate limiter unavailable")
			c.Next()
			return
		}
		if !ok {
			httperr.TooManyRequests(c, "too_many_requests", "Too many requests, slow down.")
			c.Abort()
			return
		}
		c.Next()
	}
}
