package web_router

import (
	"net/http"
	"strings"

	"github.com/haierkeys/file-cms-service/internal/app"

	"github.com/gin-gonic/gin"
)

// Dispatcher resolves the dynamic document paths. Document names occupy
// the top path level next to the fixed pages, which gin's routing tree
// cannot express with a wildcard, so these requests arrive via NoRoute.
// Dispatcher 解析动态文档路径。文档名与固定页面同级，gin 路由树
// 无法用通配符表达，这类请求经 NoRoute 进入。
type Dispatcher struct {
	documents *DocumentHandler
	history   *HistoryHandler
}

// NewDispatcher 创建 Dispatcher 实例
func NewDispatcher(a *app.App) *Dispatcher {
	return &Dispatcher{
		documents: NewDocumentHandler(a),
		history:   NewHistoryHandler(a),
	}
}

// Handle 按路径段数分发：
//
//	/<file>                          GET 查看 / POST 保存编辑
//	/<file>/edit                     GET 编辑表单
//	/<file>/delete                   POST 删除
//	/<file>/duplicate                GET 表单 / POST 提交
//	/<histFile>/hist/<file>/edit     GET 历史快照编辑表单
func (d *Dispatcher) Handle(c *gin.Context) {
	path := strings.Trim(c.Request.URL.Path, "/")
	segments := strings.Split(path, "/")

	switch {
	case len(segments) == 1 && segments[0] != "":
		name := segments[0]
		switch c.Request.Method {
		case http.MethodGet:
			d.documents.Show(c, name)
			return
		case http.MethodPost:
			d.documents.Update(c, name)
			return
		}

	case len(segments) == 2:
		name, action := segments[0], segments[1]
		switch {
		case action == "edit" && c.Request.Method == http.MethodGet:
			d.documents.EditForm(c, name)
			return
		case action == "delete" && c.Request.Method == http.MethodPost:
			d.documents.Delete(c, name)
			return
		case action == "duplicate" && c.Request.Method == http.MethodGet:
			d.documents.DuplicateForm(c, name)
			return
		case action == "duplicate" && c.Request.Method == http.MethodPost:
			d.documents.Duplicate(c, name)
			return
		}

	case len(segments) == 4 && segments[1] == "hist" && segments[3] == "edit":
		if c.Request.Method == http.MethodGet {
			d.history.EditForm(c, segments[0], segments[2])
			return
		}
	}

	d.documents.NotFound(c)
}
