package web_router

import (
	"net/http"

	"github.com/haierkeys/file-cms-service/internal/app"
	"github.com/haierkeys/file-cms-service/internal/dto"
	pkgapp "github.com/haierkeys/file-cms-service/pkg/app"
	"github.com/haierkeys/file-cms-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// DocumentHandler document page router handler
// DocumentHandler 文档页面路由处理器
type DocumentHandler struct {
	*Handler
}

// NewDocumentHandler 创建 DocumentHandler 实例
func NewDocumentHandler(a *app.App) *DocumentHandler {
	return &DocumentHandler{Handler: NewHandler(a)}
}

// Index renders the document listing with any pending flash message.
// Index 渲染文档列表页
func (h *DocumentHandler) Index(c *gin.Context) {
	names, err := h.App.DocumentService.List(c.Request.Context())
	if err != nil {
		h.logError(c, "DocumentHandler.Index", err)
		h.html(c, http.StatusInternalServerError, "index.tmpl", gin.H{"Flash": code.ErrorServerInternal.Msg()})
		return
	}
	h.html(c, http.StatusOK, "index.tmpl", gin.H{"Documents": names})
}

// Show renders a single document: markdown as HTML, plaintext verbatim.
// A missing document flashes and bounces back to the listing.
// Show 渲染单个文档，缺失时提示并跳转首页
func (h *DocumentHandler) Show(c *gin.Context, name string) {
	content, cType, err := h.App.DocumentService.Render(c.Request.Context(), name)
	if err != nil {
		if code.ErrorDocumentNotExist.Is(err) {
			h.flashAndRedirect(c, err.Error(), "/")
			return
		}
		h.logError(c, "DocumentHandler.Show", err)
		h.flashAndRedirect(c, code.ErrorServerInternal.Msg(), "/")
		return
	}
	h.saveSession(c)
	c.Data(http.StatusOK, cType, content)
}

// NewForm 渲染新建文档表单
func (h *DocumentHandler) NewForm(c *gin.Context) {
	if _, ok := h.requireUser(c); !ok {
		return
	}
	h.html(c, http.StatusOK, "new.tmpl", gin.H{})
}

// Create handles the new-document submit. Validation failures re-render
// the form with the message and the entered values.
// Create 处理新建文档提交，校验失败时带消息重渲染表单
func (h *DocumentHandler) Create(c *gin.Context) {
	if _, ok := h.requireUser(c); !ok {
		return
	}

	params := &dto.DocumentCreateRequest{}
	if valid, errs := pkgapp.BindAndValid(c, params); !valid {
		h.html(c, code.ErrorInvalidParams.StatusCode(), "new.tmpl", gin.H{"Flash": errs.Error()})
		return
	}

	if err := h.App.DocumentService.Create(c.Request.Context(), params); err != nil {
		status := http.StatusInternalServerError
		if cerr, ok := err.(*code.Code); ok {
			status = cerr.StatusCode()
		}
		h.html(c, status, "new.tmpl", gin.H{
			"Flash":   err.Error(),
			"Name":    params.Name,
			"Content": params.Content,
		})
		return
	}

	h.flashAndRedirect(c, code.SuccessDocumentCreated.WithArgs(params.Name).Msg(), "/")
}

// EditForm renders the edit page with the current content and the
// document's history entries.
// EditForm 渲染编辑页，附带当前内容和历史记录
func (h *DocumentHandler) EditForm(c *gin.Context, name string) {
	if _, ok := h.requireUser(c); !ok {
		return
	}

	doc, err := h.App.DocumentService.Get(c.Request.Context(), name)
	if err != nil {
		if code.ErrorDocumentNotExist.Is(err) {
			h.flashAndRedirect(c, err.Error(), "/")
			return
		}
		h.logError(c, "DocumentHandler.EditForm", err)
		h.flashAndRedirect(c, code.ErrorServerInternal.Msg(), "/")
		return
	}

	history, err := h.App.HistoryService.ListFor(c.Request.Context(), name)
	if err != nil {
		h.logError(c, "DocumentHandler.EditForm.ListFor", err)
	}

	h.html(c, http.StatusOK, "edit.tmpl", gin.H{
		"Name":    doc.Name,
		"Content": doc.Content,
		"History": history,
	})
}

// Update archives the current content under the editing user's name and
// overwrites the document with the submitted body.
// Update 先以当前用户名归档旧内容，再覆盖写入新内容
func (h *DocumentHandler) Update(c *gin.Context, name string) {
	username, ok := h.requireUser(c)
	if !ok {
		return
	}

	params := &dto.DocumentEditRequest{}
	if valid, errs := pkgapp.BindAndValid(c, params); !valid {
		h.html(c, code.ErrorInvalidParams.StatusCode(), "edit.tmpl", gin.H{"Flash": errs.Error(), "Name": name})
		return
	}

	ctx := c.Request.Context()
	if err := h.App.HistoryService.ArchiveBeforeEdit(ctx, name, username); err != nil {
		if code.ErrorDocumentNotExist.Is(err) {
			h.flashAndRedirect(c, err.Error(), "/")
			return
		}
		h.logError(c, "DocumentHandler.Update.Archive", err)
		h.flashAndRedirect(c, code.ErrorServerInternal.Msg(), "/")
		return
	}
	if err := h.App.DocumentService.Write(ctx, name, params.Content); err != nil {
		h.logError(c, "DocumentHandler.Update.Write", err)
		h.flashAndRedirect(c, code.ErrorServerInternal.Msg(), "/")
		return
	}

	h.flashAndRedirect(c, code.SuccessDocumentUpdated.WithArgs(name).Msg(), "/")
}

// Delete removes the document's archived versions and ledger entries,
// then the document itself. A file already gone is not an error.
// Delete 先删除文档的全部历史，再删除文档本身，文件已缺失不算错误
func (h *DocumentHandler) Delete(c *gin.Context, name string) {
	if _, ok := h.requireUser(c); !ok {
		return
	}

	ctx := c.Request.Context()
	// 先清理历史与台账，再删除文档本身
	if err := h.App.HistoryService.DeleteAllFor(ctx, name); err != nil {
		h.logError(c, "DocumentHandler.Delete.History", err)
	}
	if err := h.App.DocumentService.Delete(ctx, name); err != nil {
		h.logError(c, "DocumentHandler.Delete", err)
		h.flashAndRedirect(c, code.ErrorServerInternal.Msg(), "/")
		return
	}

	h.flashAndRedirect(c, code.SuccessDocumentDeleted.WithArgs(name).Msg(), "/")
}

// DuplicateForm renders the duplicate page preloaded with the source
// document's content.
// DuplicateForm 渲染复制页，预载源文档内容
func (h *DocumentHandler) DuplicateForm(c *gin.Context, source string) {
	if _, ok := h.requireUser(c); !ok {
		return
	}

	doc, err := h.App.DocumentService.Get(c.Request.Context(), source)
	if err != nil {
		if code.ErrorDocumentNotExist.Is(err) {
			h.flashAndRedirect(c, err.Error(), "/")
			return
		}
		h.logError(c, "DocumentHandler.DuplicateForm", err)
		h.flashAndRedirect(c, code.ErrorServerInternal.Msg(), "/")
		return
	}

	h.html(c, http.StatusOK, "duplicate.tmpl", gin.H{
		"Source":  source,
		"Content": doc.Content,
	})
}

// Duplicate handles the duplicate submit. Validation failures re-render
// the form still preloaded with the source content.
// Duplicate 处理复制提交，校验失败时仍预载源内容重渲染
func (h *DocumentHandler) Duplicate(c *gin.Context, source string) {
	if _, ok := h.requireUser(c); !ok {
		return
	}

	params := &dto.DocumentDuplicateRequest{}
	if valid, errs := pkgapp.BindAndValid(c, params); !valid {
		h.html(c, code.ErrorInvalidParams.StatusCode(), "duplicate.tmpl", gin.H{"Flash": errs.Error(), "Source": source})
		return
	}

	ctx := c.Request.Context()
	if err := h.App.DocumentService.Duplicate(ctx, source, params); err != nil {
		if code.ErrorDocumentNotExist.Is(err) {
			h.flashAndRedirect(c, err.Error(), "/")
			return
		}

		status := http.StatusInternalServerError
		if cerr, ok := err.(*code.Code); ok {
			status = cerr.StatusCode()
		}
		data := gin.H{
			"Flash":  err.Error(),
			"Source": source,
			"Name":   params.Name,
		}
		if doc, derr := h.App.DocumentService.Get(ctx, source); derr == nil {
			data["Content"] = doc.Content
		}
		h.html(c, status, "duplicate.tmpl", data)
		return
	}

	h.flashAndRedirect(c, code.SuccessDocumentDuplicated.WithArgs(params.Name, source).Msg(), "/")
}
