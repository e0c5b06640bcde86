package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"issuetracker/internal/infrastructure/ratelimit"
	"issuetracker/internal/shared/logger"
	"issuetracker/internal/shared/utils"
)

// RateLimit admits requests per client IP through limiter. A nil limiter
// disables the check, and limiter errors let the request through.
func RateLimit(limiter ratelimit.Limiter, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "error", err, "path", c.Request.URL.Path)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
