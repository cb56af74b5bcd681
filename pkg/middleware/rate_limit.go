package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/fekuna/omnipos-storefinder-service/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const rateLimitKeyPrefix = "storefinder:rate_limit:"

// Counter counts hits per key inside a fixed window. Satisfied by *cache.RedisClient.
type Counter interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimiter allows count requests per period for each client IP. A nil
// counter disables limiting; counter errors let the request through.
func RateLimiter(counter Counter, count int, period time.Duration, log logger.ZapLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if counter == nil {
			c.Next()
			return
		}

		key := rateLimitKeyPrefix + c.ClientIP()
		hits, err := counter.Hit(c.Request.Context(), key, period)
		if err != nil {
			log.Warn("rate limiter unavailable", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}

		if hits > int64(count) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}

		c.Next()
	}
}
