package events

import (
	"context"
	"time"

	"lotto_simulator/internal/lotto_simulator/config"
	"lotto_simulator/internal/lotto_simulator/session"
	"lotto_simulator/pkg/healthcheck"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// BuildPublishers 依 events.backends 建立輸出端。
// 無法連接的 NATS 會被略過，Redis 連線失敗只記錄警告，之後的發送失敗仍只寫日誌。
func BuildPublishers(ctx context.Context, cfg *config.AppConfig, hub *Hub, logger *zap.Logger) []Publisher {
	publishers := make([]Publisher, 0, len(cfg.Events.Backends))

	for _, backend := range cfg.Events.Backends {
		switch backend {
		case config.BackendLog:
			publishers = append(publishers, NewLogPublisher(logger))

		case config.BackendRedis:
			client := NewRedisClient(cfg.Events.Redis)
			pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			if err := client.Ping(pingCtx).Err(); err != nil {
				logger.Warn("Redis 暫時無法連接，事件發送將持續重試",
					zap.String("addr", cfg.Events.Redis.Addr), zap.Error(err))
			}
			cancel()
			publishers = append(publishers, NewRedisPublisher(client, cfg.Events.Redis.Channel))

		case config.BackendNATS:
			conn, err := ConnectNATS(cfg.Events.NATS)
			if err != nil {
				logger.Warn("略過 NATS 事件輸出", zap.Error(err))
				continue
			}
			publishers = append(publishers, NewNATSPublisher(conn, cfg.Events.NATS.Subject))

		case config.BackendWebsocket:
			if hub != nil {
				publishers = append(publishers, hub)
			}
		}
	}

	logger.Info("事件輸出端已建立", zap.Strings("backends", cfg.Events.Backends), zap.Int("active", len(publishers)))
	return publishers
}

// ProvideHub 提供 WebSocket Hub 並掛上生命週期
func ProvideHub(lc fx.Lifecycle, logger *zap.Logger) *Hub {
	hub := NewHub(logger)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go hub.Start(context.Background())
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return hub.Close()
		},
	})
	return hub
}

// PublisherParams 事件輸出端依賴
type PublisherParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.AppConfig
	Logger    *zap.Logger
	Hub       *Hub
}

// ProvidePublisher 提供組合後的 Publisher
func ProvidePublisher(p PublisherParams) *MultiPublisher {
	multi := NewMultiPublisher(BuildPublishers(context.Background(), p.Config, p.Hub, p.Logger)...)
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return multi.Close()
		},
	})
	return multi
}

// RegisterHealthChecks 將外部輸出端加入就緒檢查
func RegisterHealthChecks(health *healthcheck.Manager, publisher *MultiPublisher) {
	for _, checker := range publisher.HealthCheckers() {
		health.AddReadinessCheck(checker)
	}
}

// ProvideObserver 提供發送回合事件的觀察者
func ProvideObserver(publisher Publisher, logger *zap.Logger) *Observer {
	return NewObserver(publisher, logger)
}

var Module = fx.Module("events",
	fx.Provide(
		ProvideHub,
		ProvidePublisher,
		func(m *MultiPublisher) Publisher { return m },
		fx.Annotate(
			ProvideObserver,
			fx.As(new(session.RoundObserver)),
			fx.ResultTags(`group:"round_observers"`),
		),
	),
	fx.Invoke(RegisterHealthChecks),
)
