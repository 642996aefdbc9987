package middleware

import (
	"net/http"
	"time"

	"github.com/Unsorted-Wings/sweet-shop/config"
	"github.com/gin-gonic/gin"
)

const (
	rateLimitPeriod = 1 * time.Minute
	rateLimitCount  = 5 // requests per IP per period
)

// RateLimiter throttles the auth endpoints per client IP using Redis. When
// Redis is unavailable requests pass through unthrottled.
func RateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.RedisClient == nil {
			c.Next()
			return
		}

		ip := c.ClientIP()
		key := "rate_limit:" + ip

		count, err := config.RedisClient.Incr(c.Request.Context(), key).Result()
		if err != nil {
			c.Next()
			return
		}

		// First hit on this key starts the window.
		if count == 1 {
			config.RedisClient.Expire(c.Request.Context(), key, rateLimitPeriod)
		}

		if count > rateLimitCount {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			c.Abort()
			return
		}

		c.Next()
	}
}
