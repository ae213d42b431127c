package middleware

import (
	"math"
	"net/http"
	"strconv"

	"schedulink-backend/internal/cache"
	"schedulink-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimit 依 client IP 限流；Redis 無法使用時放行
func RateLimit(limiter cache.RateLimiter, limit int) gin.HandlerFunc {
	log := logger.WithComponent("rate_limit")
	return func(c *gin.Context) {
		result, err := limiter.Allow(c, c.ClientIP())
		if err != nil {
			log.Warn("Rate limiter unavailable, allowing request",
				zap.String("client_ip", c.ClientIP()),
				zap.Error(err),
			)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))

		if !result.Allowed {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(result.ResetIn.Seconds()))))
			log.Warn("Rate limit exceeded",
				zap.String("client_ip", c.ClientIP()),
				zap.Int("count", result.Count),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}
		c.Next()
	}
}
