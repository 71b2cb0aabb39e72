package config

import (
	"lotto_simulator/pkg/logger"

	"go.uber.org/fx"
)

// ProvideConfig 依命令行參數載入配置
func ProvideConfig(args CommandLineArgs) (*AppConfig, error) {
	return Load(args)
}

// ProvideLoggerOptions 由配置產生日誌設定
func ProvideLoggerOptions(cfg *AppConfig) logger.Options {
	return logger.Options{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development || cfg.Server.Mode == "dev",
	}
}

var Module = fx.Module("config",
	fx.Provide(
		ProvideConfig,
		ProvideLoggerOptions,
	),
)
