package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"salon-agenda/pkg/redis"
	"salon-agenda/pkg/response"
)

// RateLimit enforces a Redis sliding-window limit per client IP and route.
// A nil rdb or a Redis error fails open.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			response.Error(c, http.StatusTooManyRequests, 10010, "too many requests, slow down")
			c.Abort()
			return
		}

		c.Next()
	}
}
