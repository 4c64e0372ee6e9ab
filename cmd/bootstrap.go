package cmd

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// bootstrapLogger covers the window before the config is loaded and the
// main logger exists: flag parsing, config discovery, auto-creation.
// bootstrapLogger 覆盖配置加载、主日志器就绪之前的启动窗口：
// 参数解析、配置发现与自动生成。
var bootstrapLogger = newBootstrapLogger()

// newBootstrapLogger 构建彩色控制台日志器，DEBUG 环境变量开启调试级别
func newBootstrapLogger() *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	level := zapcore.InfoLevel
	if os.Getenv("DEBUG") != "" {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		level,
	)
	return zap.New(core, zap.AddCaller())
}

// BootstrapLogger 获取启动阶段日志器
func BootstrapLogger() *zap.Logger {
	return bootstrapLogger
}
