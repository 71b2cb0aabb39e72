package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lotto_simulator/internal/lotto_simulator/config"
	"lotto_simulator/pkg/healthcheck"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var errNATSDisconnected = errors.New("NATS 連線中斷")

// healthChecked 可提供就緒檢查的輸出端
type healthChecked interface {
	HealthChecker() healthcheck.Checker
}

// LogPublisher 將事件寫入結構化日誌
type LogPublisher struct {
	logger *zap.Logger
}

func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With(zap.String("component", "event_log"))}
}

func (p *LogPublisher) Publish(ctx context.Context, event RoundEvent) error {
	p.logger.Info("回合結果",
		zap.String("session_id", event.SessionID),
		zap.Int("round", event.Round),
		zap.Ints("actual", event.Actual),
		zap.Int("predictions", len(event.Predictions)),
		zap.Int("round_winnings", event.RoundWinnings),
		zap.Int("money_score", event.MoneyScore),
		zap.Bool("jackpot_won", event.JackpotWon),
		zap.String("odds", event.Odds))
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}

// redisPublishClient RedisPublisher 需要的 Redis 操作
type redisPublishClient interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// RedisPublisher 以 PUBLISH 將事件送到 Redis 頻道
type RedisPublisher struct {
	client  redisPublishClient
	channel string
}

// NewRedisClient 依配置建立 Redis 客戶端
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func NewRedisPublisher(client redisPublishClient, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

func (p *RedisPublisher) Publish(ctx context.Context, event RoundEvent) error {
	payload, err := event.Marshal()
	if err != nil {
		return fmt.Errorf("編碼回合事件失敗: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("發送到 Redis 頻道 %s 失敗: %w", p.channel, err)
	}
	return nil
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}

func (p *RedisPublisher) HealthChecker() healthcheck.Checker {
	return &healthcheck.FuncChecker{Name_: "events-redis", Fn: func(ctx context.Context) error {
		return p.client.Ping(ctx).Err()
	}}
}

// natsConn NATSPublisher 需要的 NATS 操作
type natsConn interface {
	Publish(subject string, data []byte) error
	IsConnected() bool
	Drain() error
}

// NATSPublisher 將事件發佈到 NATS 主題
type NATSPublisher struct {
	conn    natsConn
	subject string
}

// ConnectNATS 連接 NATS 伺服器
func ConnectNATS(cfg config.NATSConfig) (*nats.Conn, error) {
	opts := []nats.Option{
		nats.Name(cfg.Name),
		nats.Timeout(5 * time.Second),
		nats.ReconnectWait(2 * time.Second),
		nats.MaxReconnects(5),
	}
	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("連接 NATS %s 失敗: %w", cfg.URL, err)
	}
	return conn, nil
}

func NewNATSPublisher(conn natsConn, subject string) *NATSPublisher {
	return &NATSPublisher{conn: conn, subject: subject}
}

func (p *NATSPublisher) Publish(ctx context.Context, event RoundEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := event.Marshal()
	if err != nil {
		return fmt.Errorf("編碼回合事件失敗: %w", err)
	}
	if err := p.conn.Publish(p.subject, payload); err != nil {
		return fmt.Errorf("發送到 NATS 主題 %s 失敗: %w", p.subject, err)
	}
	return nil
}

func (p *NATSPublisher) Close() error {
	return p.conn.Drain()
}

func (p *NATSPublisher) HealthChecker() healthcheck.Checker {
	return &healthcheck.FuncChecker{Name_: "events-nats", Fn: func(ctx context.Context) error {
		if !p.conn.IsConnected() {
			return errNATSDisconnected
		}
		return nil
	}}
}

// MultiPublisher 將事件分發到所有輸出端，並收集全部錯誤
type MultiPublisher struct {
	publishers []Publisher
}

func NewMultiPublisher(publishers ...Publisher) *MultiPublisher {
	return &MultiPublisher{publishers: publishers}
}

func (m *MultiPublisher) Publish(ctx context.Context, event RoundEvent) error {
	var errs []error
	for _, p := range m.publishers {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiPublisher) Close() error {
	var errs []error
	for _, p := range m.publishers {
		if err := p.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// HealthCheckers 返回外部輸出端的就緒檢查
func (m *MultiPublisher) HealthCheckers() []healthcheck.Checker {
	var checkers []healthcheck.Checker
	for _, p := range m.publishers {
		if hc, ok := p.(healthChecked); ok {
			checkers = append(checkers, hc.HealthChecker())
		}
	}
	return checkers
}

// Len 返回輸出端數量
func (m *MultiPublisher) Len() int {
	return len(m.publishers)
}
