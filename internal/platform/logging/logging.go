package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"timetally/internal/platform/config"
)

// New builds the process logger from config: console output by default, or a
// rotating file when log_method is "file".
func New(cfg config.Config) (*zap.Logger, error) {
	switch cfg.LogMethod {
	case config.LogMethodStdout:
		zapCfg := zap.NewProductionConfig()
		zapCfg.Level = zap.NewAtomicLevelAt(level(cfg.Verbosity))
		zapCfg.OutputPaths = []string{"stdout"}
		return zapCfg.Build()
	case config.LogMethodFile:
		writer := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		})
		encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		core := zapcore.NewCore(encoder, writer, level(cfg.Verbosity))
		return zap.New(core), nil
	default:
		return nil, fmt.Errorf("unknown log method %q", cfg.LogMethod)
	}
}

// level maps the CLI verbosity count onto zap levels: 1 error, 2 warn,
// 3 info, 4 and up debug.
func level(verbosity int) zapcore.Level {
	switch verbosity {
	case 1:
		return zapcore.ErrorLevel
	case 2:
		return zapcore.WarnLevel
	case 3:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}
