package healthcheck

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ProvideManager 提供健康檢查管理器，啟動完成後標記為就緒，停止時取消就緒
func ProvideManager(lc fx.Lifecycle, logger *zap.Logger) *Manager {
	m := New(logger)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			m.SetReady(true)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			m.SetReady(false)
			return nil
		},
	})
	return m
}

// Module 提供健康檢查管理器
var Module = fx.Module("healthcheck",
	fx.Provide(ProvideManager),
)
