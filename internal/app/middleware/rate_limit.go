package middleware

import (
	"net/http"

	"support-desk/pkg/logger"
	"support-desk/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

const msgRateLimited = "Too many complaints submitted from this address. Please try again later."

// RateLimit caps submissions per source address. Limiter backend errors fail
// open so a degraded Redis does not take the endpoint down with it.
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.Error(err, "rate limiter failure, allowing request")
			c.Next()
			return
		}

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": msgRateLimited,
			})
			return
		}

		c.Next()
	}
}
