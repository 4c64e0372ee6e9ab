package web_router

import (
	"html/template"
	"net/http"

	"github.com/haierkeys/file-cms-service/internal/app"
	"github.com/haierkeys/file-cms-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// HistoryHandler history page router handler
// HistoryHandler 历史版本页面路由处理器
type HistoryHandler struct {
	*Handler
}

// NewHistoryHandler 创建 HistoryHandler 实例
func NewHistoryHandler(a *app.App) *HistoryHandler {
	return &HistoryHandler{Handler: NewHandler(a)}
}

// EditForm renders an archived snapshot in the edit form, together with
// its diff against the current content. The snapshot must be registered
// under the named document; a stray archive on disk does not count.
// EditForm 在编辑表单中渲染历史快照，并附与当前内容的差异。
// 快照必须登记在该文档名下，磁盘上的孤立归档不算。
func (h *HistoryHandler) EditForm(c *gin.Context, histFile string, name string) {
	if _, ok := h.requireUser(c); !ok {
		return
	}

	ctx := c.Request.Context()
	if _, err := h.App.HistoryService.FindEntry(ctx, histFile, name); err != nil {
		h.flashAndRedirect(c, err.Error(), "/")
		return
	}

	content, err := h.App.HistoryService.ArchiveContent(ctx, histFile)
	if err != nil {
		if code.ErrorDocumentNotExist.Is(err) {
			h.flashAndRedirect(c, err.Error(), "/")
			return
		}
		h.logError(c, "HistoryHandler.EditForm", err)
		h.flashAndRedirect(c, code.ErrorServerInternal.Msg(), "/")
		return
	}

	diffHTML, err := h.App.HistoryService.DiffAgainstCurrent(ctx, name, histFile)
	if err != nil {
		h.logError(c, "HistoryHandler.EditForm.Diff", err)
	}

	history, err := h.App.HistoryService.ListFor(ctx, name)
	if err != nil {
		h.logError(c, "HistoryHandler.EditForm.ListFor", err)
	}

	h.html(c, http.StatusOK, "edit.tmpl", gin.H{
		"Name":     name,
		"Content":  content,
		"History":  history,
		"HistFile": histFile,
		"Diff":     template.HTML(diffHTML),
	})
}
