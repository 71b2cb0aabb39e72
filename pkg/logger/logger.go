package logger

import (
	"context"
	"os"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options 日誌設定
type Options struct {
	Level       string // debug, info, warn, error
	Development bool   // 開發模式使用 console encoder
}

// ParseLevel 將字串轉換為 zap 等級，無法識別時回退為 info
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// NewLogger 創建一個新的日誌記錄器
func NewLogger(opts Options) (*zap.Logger, error) {
	// 創建基本的 encoder 配置
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	encoder := zapcore.NewJSONEncoder(encoderConfig)
	if opts.Development {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	// 配置日誌核心
	core := zapcore.NewCore(
		encoder,
		zapcore.AddSync(os.Stdout),
		zap.NewAtomicLevelAt(ParseLevel(opts.Level)),
	)

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

// ProvideLogger 提供 Logger 實例，用於 fx
func ProvideLogger(lc fx.Lifecycle, opts Options) (*zap.Logger, error) {
	logger, err := NewLogger(opts)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("日誌系統已初始化", zap.String("level", ParseLevel(opts.Level).String()))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// stdout 在部分平台上 Sync 會返回 EINVAL，忽略
			_ = logger.Sync()
			return nil
		},
	})

	return logger, nil
}

// Module 創建 fx 模組，包含所有日誌相關組件
var Module = fx.Module("logger",
	fx.Provide(
		ProvideLogger,
	),
)
