package session

import (
	"lotto_simulator/internal/lotto_simulator/config"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// RegistryParams 註冊表依賴，觀察者由其他模組以 round_observers 群組提供
type RegistryParams struct {
	fx.In

	Config    *config.AppConfig
	Logger    *zap.Logger
	Observers []RoundObserver `group:"round_observers"`
}

// ProvideRegistry 提供會話註冊表
func ProvideRegistry(p RegistryParams) *Registry {
	return NewRegistry(SettingsFromConfig(p.Config.Simulator), p.Config.Simulator.Seed, p.Logger, p.Observers...)
}

var Module = fx.Module("session",
	fx.Provide(ProvideRegistry),
)
