// Package app 提供应用容器，封装所有依赖和服务
package app

import (
	"fmt"
	"time"

	"github.com/haierkeys/file-cms-service/internal/dao"
	"github.com/haierkeys/file-cms-service/internal/domain"
	"github.com/haierkeys/file-cms-service/internal/markdown"
	"github.com/haierkeys/file-cms-service/internal/service"
	pkgapp "github.com/haierkeys/file-cms-service/pkg/app"
	"github.com/haierkeys/file-cms-service/pkg/storage"
	"github.com/haierkeys/file-cms-service/pkg/util"

	"go.uber.org/zap"
)

// App 应用容器，封装所有依赖和服务
type App struct {
	// 基础设施（注入的依赖）
	config *AppConfig
	logger *zap.Logger
	Dao    *dao.Dao

	// Repository 层
	DocumentRepo domain.DocumentRepository
	LedgerRepo   domain.LedgerRepository
	UserRepo     domain.UserRepository

	// Service 层
	DocumentService service.DocumentService
	HistoryService  service.HistoryService
	UserService     service.UserService
	UploadService   service.UploadService

	// 基础设施组件
	SessionManager *pkgapp.SessionManager
	Storage        storage.Storager
}

// NewApp 创建应用容器实例
// 初始化所有依赖并进行依赖注入
// cfg: 应用配置（必须）
// logger: zap 日志器（必须）
func NewApp(cfg *AppConfig, logger *zap.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	a := &App{
		config: cfg,
		logger: logger,
	}

	// 初始化 DAO（使用依赖注入）
	d, err := dao.New(&dao.Config{
		DataPath:        cfg.App.DataPath,
		HistoryPath:     cfg.App.HistoryPath,
		LedgerFile:      cfg.App.LedgerFile,
		CredentialsFile: cfg.App.CredentialsFile,
	}, dao.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	a.Dao = d

	// 初始化 SessionManager
	a.SessionManager = pkgapp.NewSessionManager(pkgapp.SessionConfig{
		SecretKey:  cfg.Security.SessionKey,
		CookieName: cfg.Security.SessionCookie,
		Expiry:     cfg.GetSessionExpiry(),
		Issuer:     "file-cms-service",
		Secure:     cfg.Security.SessionSecure,
	})

	// 初始化存储后端
	a.Storage, err = storage.NewClient(&cfg.Storage)
	if err != nil {
		return nil, err
	}

	// 初始化 Repository 层
	a.DocumentRepo = dao.NewDocumentRepository(d)
	a.LedgerRepo = dao.NewLedgerRepository(d)
	a.UserRepo = dao.NewUserRepository(d)

	// 创建 ServiceConfig（从 AppConfig 提取 Service 层需要的配置）
	svcConfig := service.DefaultServiceConfig()
	svcConfig.HistoryKeepVersions = cfg.App.HistoryKeepVersions
	svcConfig.RegisterIsEnable = cfg.User.RegisterIsEnable

	// 初始化 Service 层（依赖注入）
	a.DocumentService = service.NewDocumentService(a.DocumentRepo, markdown.NewRenderer(), logger, svcConfig)
	a.HistoryService = service.NewHistoryService(a.LedgerRepo, a.DocumentRepo, logger)
	a.UserService = service.NewUserService(a.UserRepo, logger, svcConfig)
	a.UploadService = service.NewUploadService(a.Storage, logger, svcConfig)

	logger.Info("App container initialized successfully",
		zap.String("dataPath", cfg.App.DataPath),
		zap.String("storageType", cfg.Storage.Type))

	return a, nil
}

// Config 获取应用配置
func (a *App) Config() *AppConfig {
	return a.config
}

// Logger 获取日志器
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Version 获取版本信息
func (a *App) Version() string {
	return Version
}

// GetSessionExpiry 获取会话过期时间
func (c *AppConfig) GetSessionExpiry() time.Duration {
	if expiry, err := util.ParseDuration(c.Security.SessionExpiry); err == nil {
		return expiry
	}
	return 7 * 24 * time.Hour // 理论上不会走到这里，因为有默认值
}
