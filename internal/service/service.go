// Package service 实现业务逻辑层
package service

// ServiceConfig carries the business-level knobs shared by the services.
// ServiceConfig 各服务共享的业务配置
type ServiceConfig struct {
	// DocumentExts 允许的文档扩展名
	DocumentExts []string
	// ImageExts 允许的图片扩展名
	ImageExts []string
	// HistoryKeepVersions 每个文档保留的历史版本数，0 表示不清理
	HistoryKeepVersions int
	// RegisterIsEnable 是否开放注册
	RegisterIsEnable bool
}

// DefaultServiceConfig 返回默认业务配置
func DefaultServiceConfig() *ServiceConfig {
	return &ServiceConfig{
		DocumentExts:     []string{".txt", ".md"},
		ImageExts:        []string{".png", ".jpg", ".jpeg", ".gif"},
		RegisterIsEnable: true,
	}
}
