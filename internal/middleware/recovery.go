package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/haierkeys/file-cms-service/pkg/code"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecoveryWithLogger 创建带日志器的 Recovery 中间件（支持依赖注入）
func RecoveryWithLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Recovered from panic",
					zap.Int("status", c.Writer.Status()),
					zap.String("router", path),
					zap.String("method", c.Request.Method),
					zap.String("query", query),
					zap.String("ip", c.ClientIP()),
					zap.String("user-agent", c.Request.UserAgent()),
					zap.String("panic_value", fmt.Sprintf("%v", err)),
					zap.String("stack", string(debug.Stack())),
				)

				// 页面型应用，出错时返回纯文本 500
				c.String(http.StatusInternalServerError, code.ErrorServerInternal.Msg())
				c.Abort()
			}
		}()

		c.Next()
	}
}
