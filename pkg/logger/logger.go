package logger

import (
	"os"

	"github.com/haierkeys/file-cms-service/pkg/fileurl"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config logger configuration
// Config 日志配置
type Config struct {
	// Level see zapcore.ParseLevel // 日志级别，参见 zapcore.ParseLevel
	Level string
	// File log file path, empty means stderr only // 日志文件路径，为空则只输出到 stderr
	File string
	// Production enables JSON output // 是否启用 JSON 输出
	Production bool
}

// NewLogger builds a zap logger from config
// NewLogger 根据配置构建 zap 日志器
func NewLogger(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var cores []zapcore.Core

	consoleEncoderConfig := zap.NewDevelopmentEncoderConfig()
	consoleEncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	consoleEncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cores = append(cores, zapcore.NewCore(
		zapcore.NewConsoleEncoder(consoleEncoderConfig),
		zapcore.Lock(os.Stderr),
		level,
	))

	if cfg.File != "" {
		if err := fileurl.CreatePath(cfg.File, os.ModePerm); err != nil {
			return nil, err
		}
		file, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
		if err != nil {
			return nil, err
		}

		fileEncoderConfig := zap.NewProductionEncoderConfig()
		fileEncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		var fileEncoder zapcore.Encoder
		if cfg.Production {
			fileEncoder = zapcore.NewJSONEncoder(fileEncoderConfig)
		} else {
			fileEncoder = zapcore.NewConsoleEncoder(fileEncoderConfig)
		}
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(file), level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}
