// Package app 提供应用容器，封装所有依赖和服务
package app

import (
	"os"
	"path/filepath"

	"github.com/haierkeys/file-cms-service/pkg/storage"

	"github.com/creasty/defaults"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// AppConfig 应用配置
type AppConfig struct {
	File     string         `yaml:"-"` // 配置文件路径，不序列化
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	App      AppSettings    `yaml:"app"`
	User     UserConfig     `yaml:"user"`
	Security SecurityConfig `yaml:"security"`
	Storage  storage.Config `yaml:"storage"`
	Tracer   TracerConfig   `yaml:"tracer"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	// RunMode 运行模式
	RunMode string `yaml:"run-mode" default:"release"`
	// HttpPort HTTP 端口
	HttpPort string `yaml:"http-port" default:":8080"`
	// ReadTimeout 读取超时（秒）
	ReadTimeout int `yaml:"read-timeout" default:"60"`
	// WriteTimeout 写入超时（秒）
	WriteTimeout int `yaml:"write-timeout" default:"60"`
	// PrivateHttpListen 私有 HTTP 监听地址
	PrivateHttpListen string `yaml:"private-http-listen" default:":8081"`
}

// LogConfig 日志配置
type LogConfig struct {
	// Level 日志级别，参见 zapcore.ParseLevel
	Level string `yaml:"level" default:"info"`
	// File 日志文件路径，默认为 stderr
	File string `yaml:"file" default:"storage/logs/log.log"`
	// Production 是否启用 JSON 输出
	Production bool `yaml:"production" default:"true"`
}

// AppSettings 应用设置
type AppSettings struct {
	// DataPath 文档目录
	DataPath string `yaml:"data-path" default:"data"`
	// HistoryPath 历史快照目录
	HistoryPath string `yaml:"history-path" default:"data/history"`
	// LedgerFile 版本台账文件
	LedgerFile string `yaml:"ledger-file" default:"data/history/history.json"`
	// CredentialsFile 用户凭据文件
	CredentialsFile string `yaml:"credentials-file" default:"data/users.json"`
	// HistoryKeepVersions 每个文档保留的历史版本数，0 表示不清理
	HistoryKeepVersions int `yaml:"history-keep-versions" default:"0"`
	// HistoryPruneInterval 历史清理间隔（秒）
	HistoryPruneInterval int `yaml:"history-prune-interval" default:"3600"`
	// HistoryPruneCron 历史清理 cron 表达式，非空时优先于间隔调度
	HistoryPruneCron string `yaml:"history-prune-cron"`
}

// UserConfig 用户配置
type UserConfig struct {
	// RegisterIsEnable 注册是否启用
	RegisterIsEnable bool `yaml:"register-is-enable" default:"true"`
}

// SecurityConfig 安全配置
type SecurityConfig struct {
	// SessionKey 会话 Cookie 签名密钥
	SessionKey string `yaml:"session-key" default:"file-cms-session-key"`
	// SessionCookie 会话 Cookie 名称
	SessionCookie string `yaml:"session-cookie" default:"cms_session"`
	// SessionExpiry 会话过期时间，支持格式：7d（天）、24h（小时）、30m（分钟）
	SessionExpiry string `yaml:"session-expiry" default:"7d"`
	// SessionSecure 仅 HTTPS 下发送会话 Cookie
	SessionSecure bool `yaml:"session-secure" default:"false"`
	// AuthRatePerMinute 认证接口每分钟允许的请求数，0 表示不限流
	AuthRatePerMinute int64 `yaml:"auth-rate-per-minute" default:"30"`
}

// TracerConfig 请求追踪配置
type TracerConfig struct {
	// Enabled 是否启用追踪
	Enabled bool `yaml:"enabled" default:"true"`
	// Header 追踪 ID 请求头名称，默认 X-Trace-ID
	Header string `yaml:"header" default:"X-Trace-ID"`
}

// LoadConfig 从文件加载配置
// 返回配置实例和配置文件的绝对路径
func LoadConfig(f string) (*AppConfig, string, error) {
	realpath, err := filepath.Abs(f)
	if err != nil {
		return nil, "", err
	}
	realpath = filepath.Clean(realpath)

	c := new(AppConfig)
	c.File = realpath

	// 设置默认值
	if err := defaults.Set(c); err != nil {
		return nil, realpath, errors.Wrap(err, "set default config failed")
	}

	file, err := os.ReadFile(realpath)
	if err != nil {
		return nil, realpath, errors.Wrap(err, "read config file failed")
	}

	err = yaml.Unmarshal(file, c)
	if err != nil {
		return nil, realpath, errors.Wrap(err, "parse config file failed")
	}

	// 再次设置默认值，以填充 YAML 中存在但值为空的字段
	// defaults.Set 只有在字段为该类型的零值时才会填充
	if err := defaults.Set(c); err != nil {
		return nil, realpath, errors.Wrap(err, "re-set default config failed")
	}

	return c, realpath, nil
}

// Save 保存配置到文件
func (c *AppConfig) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshal config failed")
	}

	err = os.WriteFile(c.File, data, 0644)
	if err != nil {
		return errors.Wrap(err, "write config file failed")
	}

	return nil
}
