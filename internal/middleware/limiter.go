package middleware

import (
	"github.com/haierkeys/file-cms-service/pkg/code"
	"github.com/haierkeys/file-cms-service/pkg/limiter"

	"github.com/gin-gonic/gin"
)

// RateLimiter creates rate limiting middleware (supports dependency injection)
// RateLimiter 创建限流中间件（支持依赖注入）
func RateLimiter(l limiter.LimiterIface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := l.Key(c)
		if bucket, ok := l.GetBucket(key); ok {
			count := bucket.TakeAvailable(1)
			if count == 0 {
				c.String(code.ErrorTooManyRequests.StatusCode(), code.ErrorTooManyRequests.Msg())
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
