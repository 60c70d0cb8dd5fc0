package middlewares

import (
	"net/http"

	"brainscript/internal/logger"
	"brainscript/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimit rejects callers that exceed rule with 429. It must run after
// AuthMiddleware. Redis failures let the request through.
func RateLimit(limiter *ratelimit.Limiter, rule ratelimit.Rule, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Enabled() {
			c.Next()
			return
		}
		userID, ok := CurrentUserID(c)
		if !ok {
			c.Next()
			return
		}

		allowed, err := limiter.Allow(c.Request.Context(), rule, userID.Hex())
		if err != nil && log != nil {
			log.Warn("rate limiter unavailable", "action", rule.Action, "error", err)
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}
		c.Next()
	}
}
