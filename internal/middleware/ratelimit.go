package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// RateLimitMiddleware is a fixed-window limiter keyed by client IP, backed
// by Redis so the cap holds across instances. Fails open when Redis is
// unavailable; booking must not depend on the limiter being up.
func RateLimitMiddleware(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	if limit <= 0 {
		limit = 30
	}
	if window <= 0 {
		window = time.Minute
	}

	return func(c *gin.Context) {
		key := "rl:" + c.ClientIP()

		count, err := rdb.Incr(c.Request.Context(), key).Result()
		if err != nil {
			log.Println("rate limiter unavailable:", err)
			c.Next()
			return
		}

		if count == 1 {
			rdb.Expire(c.Request.Context(), key, window)
		}

		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too_many_requests",
			})
			return
		}

		c.Next()
	}
}
