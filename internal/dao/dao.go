// Package dao implements the flat-file persistence layer: the document
// directory, the JSON version ledger and the JSON credential store.
// Package dao 实现平面文件持久层：文档目录、JSON 版本台账和 JSON 凭据存储。
package dao

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Config 持久层路径配置
type Config struct {
	// DataPath 文档目录
	DataPath string
	// HistoryPath 历史快照目录
	HistoryPath string
	// LedgerFile 版本台账文件
	LedgerFile string
	// CredentialsFile 用户凭据文件
	CredentialsFile string
}

// Dao 数据访问容器
type Dao struct {
	config *Config
	logger *zap.Logger
}

// Option 配置选项函数类型
type Option func(*Dao)

// WithLogger 设置日志器
func WithLogger(logger *zap.Logger) Option {
	return func(d *Dao) {
		d.logger = logger
	}
}

// New creates the Dao and makes sure the backing directories exist.
// New 创建 Dao 并确保底层目录存在
func New(config *Config, options ...Option) (*Dao, error) {
	if config == nil {
		return nil, errors.New("dao: config is required")
	}

	d := &Dao{
		config: config,
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		opt(d)
	}

	for _, dir := range []string{config.DataPath, config.HistoryPath} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, errors.Wrap(err, "dao: create directory")
		}
	}

	return d, nil
}

// Config returns the path configuration.
func (d *Dao) Config() *Config {
	return d.config
}
