// Package web_router 提供服务端渲染页面的路由处理器
package web_router

import (
	"net/http"

	"github.com/haierkeys/file-cms-service/internal/app"
	pkgapp "github.com/haierkeys/file-cms-service/pkg/app"
	"github.com/haierkeys/file-cms-service/pkg/code"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 基础 Handler 结构体，封装 App Container
// 所有页面 Handler 都应该嵌入此结构体以获得依赖注入能力
type Handler struct {
	App *app.App
}

// NewHandler 创建基础 Handler 实例
func NewHandler(a *app.App) *Handler {
	return &Handler{App: a}
}

// session 获取会话中间件装载的会话
func (h *Handler) session(c *gin.Context) *pkgapp.Session {
	return pkgapp.GetSession(c)
}

// saveSession persists the session cookie when the handler changed it.
// Must run before the response body is written.
// saveSession 会话有变更时写回 Cookie，必须在响应体写出前调用
func (h *Handler) saveSession(c *gin.Context) {
	s := h.session(c)
	if !s.Dirty() {
		return
	}
	if err := h.App.SessionManager.Save(c, s); err != nil {
		h.App.Logger().Error("session save failed", zap.Error(err))
	}
}

// html renders a page. The pending flash message is shown once and
// cleared, unless the caller already supplied one (form re-renders).
// html 渲染页面，待显示的 flash 消息展示一次后清除
func (h *Handler) html(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	s := h.session(c)
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = s.PopFlash()
	}
	data["User"] = s.Username
	h.saveSession(c)
	c.HTML(status, name, data)
}

// redirect persists the session and sends the client elsewhere.
func (h *Handler) redirect(c *gin.Context, location string) {
	h.saveSession(c)
	c.Redirect(http.StatusFound, location)
}

// flashAndRedirect sets a one-shot message and redirects.
func (h *Handler) flashAndRedirect(c *gin.Context, msg string, location string) {
	h.session(c).SetFlash(msg)
	h.redirect(c, location)
}

// requireUser guards mutating pages. An anonymous visitor is flashed and
// bounced to the listing.
// requireUser 校验登录态，未登录时提示并跳转首页
func (h *Handler) requireUser(c *gin.Context) (string, bool) {
	s := h.session(c)
	if !s.IsSignedIn() {
		h.flashAndRedirect(c, code.ErrorUserNotSignedIn.Msg(), "/")
		return "", false
	}
	return s.Username, true
}

// logError 记录处理器错误
func (h *Handler) logError(c *gin.Context, operation string, err error) {
	h.App.Logger().Error(operation,
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
}

// NotFound renders the fallback for paths the dispatcher cannot place.
func (h *Handler) NotFound(c *gin.Context) {
	c.String(code.ErrorNotFoundPage.StatusCode(), code.ErrorNotFoundPage.Msg())
}
