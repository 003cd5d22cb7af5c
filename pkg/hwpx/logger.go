package hwpx

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	loggerOnce sync.Once
	logger     *zap.Logger
)

// Logger returns the package logger, built once from the global config.
// Level "off" yields a no-op logger.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		level, ok := parseLogLevel(GetGlobalConfig().LogLevel)
		if !ok {
			logger = zap.NewNop()
			return
		}
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		cfg.DisableStacktrace = true
		l, err := cfg.Build()
		if err != nil {
			logger = zap.NewNop()
			return
		}
		logger = l
	})
	return logger
}

func parseLogLevel(levelStr string) (zapcore.Level, bool) {
	switch levelStr {
	case "debug":
		return zapcore.DebugLevel, true
	case "info":
		return zapcore.InfoLevel, true
	case "warn":
		return zapcore.WarnLevel, true
	case "error":
		return zapcore.ErrorLevel, true
	default:
		return zapcore.InvalidLevel, false
	}
}
