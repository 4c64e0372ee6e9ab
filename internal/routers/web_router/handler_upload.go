package web_router

import (
	"net/http"

	"github.com/haierkeys/file-cms-service/internal/app"
	"github.com/haierkeys/file-cms-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// UploadHandler image upload page router handler
// UploadHandler 图片上传页面路由处理器
type UploadHandler struct {
	*Handler
}

// NewUploadHandler 创建 UploadHandler 实例
func NewUploadHandler(a *app.App) *UploadHandler {
	return &UploadHandler{Handler: NewHandler(a)}
}

// NewForm 渲染上传表单
func (h *UploadHandler) NewForm(c *gin.Context) {
	if _, ok := h.requireUser(c); !ok {
		return
	}
	h.html(c, http.StatusOK, "upload.tmpl", gin.H{})
}

// Create handles the upload submit. Missing file or disallowed extension
// re-renders the form; the stored name is the uploaded base filename, so
// a second upload of the same name overwrites the first.
// Create 处理上传提交，以上传时的基础文件名存储，同名覆盖
func (h *UploadHandler) Create(c *gin.Context) {
	if _, ok := h.requireUser(c); !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.html(c, code.ErrorUploadFileRequired.StatusCode(), "upload.tmpl",
			gin.H{"Flash": code.ErrorUploadFileRequired.Msg()})
		return
	}

	name, err := h.App.UploadService.SaveImage(c.Request.Context(), fileHeader)
	if err != nil {
		status := http.StatusInternalServerError
		if cerr, ok := err.(*code.Code); ok {
			status = cerr.StatusCode()
		}
		h.html(c, status, "upload.tmpl", gin.H{"Flash": err.Error()})
		return
	}

	h.flashAndRedirect(c, code.SuccessImageUploaded.WithArgs(name).Msg(), "/")
}
