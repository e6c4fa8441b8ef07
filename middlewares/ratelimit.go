package middlewares

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"logicheck/internal/ratelimit"
	"logicheck/utils"
)

// RateLimit throttles by client IP. Limiter failures let the request through.
func RateLimit(limiter ratelimit.Limiter, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Warn("rate limiter unavailable, allowing request", zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			utils.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
