// Package routers 组装公共页面路由与私有监控路由
package routers

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/haierkeys/file-cms-service/internal/app"
	"github.com/haierkeys/file-cms-service/internal/middleware"
	"github.com/haierkeys/file-cms-service/internal/routers/web_router"
	"github.com/haierkeys/file-cms-service/pkg/limiter"
	"github.com/haierkeys/file-cms-service/pkg/storage"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

// NewRouter 创建公共路由
func NewRouter(templateFiles embed.FS, appContainer *app.App, uni *ut.UniversalTranslator) *gin.Engine {

	// 获取配置
	cfg := appContainer.Config()

	r := gin.New()

	if cfg.Tracer.Enabled {
		r.Use(middleware.TraceMiddleware(cfg.Tracer.Header))
	}
	if cfg.Security.AuthRatePerMinute > 0 {
		authLimiter := limiter.NewMethodLimiter().AddBuckets(
			limiter.BucketRule{
				Key:          "/users",
				FillInterval: time.Minute,
				Capacity:     cfg.Security.AuthRatePerMinute,
				Quantum:      cfg.Security.AuthRatePerMinute,
			},
		)
		r.Use(middleware.RateLimiter(authLimiter))
	}
	r.Use(middleware.LangWithTranslator(uni))
	r.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
	r.Use(middleware.RecoveryWithLogger(appContainer.Logger()))
	r.Use(middleware.Metrics())
	r.Use(middleware.SessionLoad(appContainer.SessionManager))

	tmpl := template.Must(template.New("").ParseFS(templateFiles, "templates/*.tmpl"))
	r.SetHTMLTemplate(tmpl)

	// 创建 Handlers（注入 App Container）
	documentHandler := web_router.NewDocumentHandler(appContainer)
	userHandler := web_router.NewUserHandler(appContainer)
	uploadHandler := web_router.NewUploadHandler(appContainer)
	dispatcher := web_router.NewDispatcher(appContainer)

	r.GET("/", documentHandler.Index)

	r.GET("/file/new", documentHandler.NewForm)
	r.POST("/file/new", documentHandler.Create)

	r.GET("/users/signin", userHandler.SignInForm)
	r.POST("/users/signin", userHandler.SignIn)
	r.POST("/users/signout", userHandler.SignOut)
	r.GET("/users/signup", userHandler.SignUpForm)
	r.POST("/users/signup", userHandler.SignUp)

	r.GET("/image/new", uploadHandler.NewForm)
	r.POST("/image/new", uploadHandler.Create)

	// 本地存储时直接静态托管图片目录
	if cfg.Storage.Type == storage.LOCAL && cfg.Storage.SavePath != "" {
		r.StaticFS("/images", http.Dir(cfg.Storage.SavePath))
	}

	// 文档名占据顶层路径，与固定页面同级，经 NoRoute 分发
	r.NoRoute(dispatcher.Handle)

	return r
}
