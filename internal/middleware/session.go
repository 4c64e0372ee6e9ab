package middleware

import (
	"github.com/haierkeys/file-cms-service/pkg/app"

	"github.com/gin-gonic/gin"
)

// SessionLoad parses the session cookie once per request and stashes the
// mutable session in the gin context. Handlers persist it back through the
// render/redirect helpers.
// SessionLoad 每个请求解析一次会话 Cookie 并放入 gin 上下文
func SessionLoad(manager *app.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(app.SessionContextKey, manager.Load(c))
		c.Next()
	}
}
