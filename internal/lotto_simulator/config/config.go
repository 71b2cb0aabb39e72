package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// 事件輸出後端
const (
	BackendLog       = "log"
	BackendRedis     = "redis"
	BackendNATS      = "nats"
	BackendWebsocket = "websocket"
)

// AppConfig 模擬器服務的完整配置
type AppConfig struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Simulator SimulatorConfig `yaml:"simulator"`
	Events    EventsConfig    `yaml:"events"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

type ServerConfig struct {
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	Mode    string `yaml:"mode"` // dev, prod
	Swagger bool   `yaml:"swagger"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// SimulatorConfig 每個模擬會話的遊戲參數
type SimulatorConfig struct {
	WarmupDraws         int   `yaml:"warmup_draws"`           // 每回合開獎前先跑的期數
	AIPredictions       int   `yaml:"ai_predictions"`         // 每回合 AI 預測注數
	TicketCost          int   `yaml:"ticket_cost"`            // 每注成本
	MaxUserSets         int   `yaml:"max_user_sets"`          // 使用者最多可選組數
	MaxRoundsPerRequest int   `yaml:"max_rounds_per_request"` // 單次連續遊玩回合上限
	Seed                int64 `yaml:"seed"`                   // 0 表示以時間為種子
}

type EventsConfig struct {
	Backends []string    `yaml:"backends"`
	Redis    RedisConfig `yaml:"redis"`
	NATS     NATSConfig  `yaml:"nats"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Channel  string `yaml:"channel"`
}

type NATSConfig struct {
	URL     string `yaml:"url"`
	Subject string `yaml:"subject"`
	Name    string `yaml:"name"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// DefaultConfig 返回預設配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Host:    "0.0.0.0",
			Port:    8080,
			Mode:    "dev",
			Swagger: true,
		},
		Log: LogConfig{
			Level: "info",
		},
		Simulator: SimulatorConfig{
			WarmupDraws:         10,
			AIPredictions:       6,
			TicketCost:          3,
			MaxUserSets:         6,
			MaxRoundsPerRequest: 1000,
		},
		Events: EventsConfig{
			Backends: []string{BackendLog, BackendWebsocket},
			Redis: RedisConfig{
				Addr:    "localhost:6379",
				Channel: "lotto:rounds",
			},
			NATS: NATSConfig{
				URL:     "nats://localhost:4222",
				Subject: "lotto.rounds",
				Name:    "lotto-simulator",
			},
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

// ParseConfig 將 YAML 內容覆蓋到預設配置上
func ParseConfig(content []byte) (*AppConfig, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("解析 YAML 配置失敗: %w", err)
	}
	return cfg, nil
}

// LoadConfigFile 讀取並解析 YAML 配置檔
func LoadConfigFile(path string) (*AppConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("讀取配置檔 %s 失敗: %w", path, err)
	}
	return ParseConfig(content)
}

// Load 依序套用：預設值 -> 配置檔 -> 環境變數 -> 命令行參數
func Load(args CommandLineArgs) (*AppConfig, error) {
	cfg := DefaultConfig()

	if args.ConfigFile != "" {
		fileCfg, err := LoadConfigFile(args.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	applyEnv(cfg)

	if err := applyArgs(cfg, args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 檢查配置值是否合理
func (c *AppConfig) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("無效的服務端口: %d", c.Server.Port)
	}
	if c.Simulator.WarmupDraws < 0 {
		return fmt.Errorf("warmup_draws 不可為負數: %d", c.Simulator.WarmupDraws)
	}
	if c.Simulator.AIPredictions < 0 {
		return fmt.Errorf("ai_predictions 不可為負數: %d", c.Simulator.AIPredictions)
	}
	if c.Simulator.TicketCost < 0 {
		return fmt.Errorf("ticket_cost 不可為負數: %d", c.Simulator.TicketCost)
	}
	if c.Simulator.MaxUserSets < 0 {
		return fmt.Errorf("max_user_sets 不可為負數: %d", c.Simulator.MaxUserSets)
	}
	if c.Simulator.MaxRoundsPerRequest <= 0 {
		return fmt.Errorf("max_rounds_per_request 必須大於 0: %d", c.Simulator.MaxRoundsPerRequest)
	}

	for _, backend := range c.Events.Backends {
		switch backend {
		case BackendLog, BackendRedis, BackendNATS, BackendWebsocket:
		default:
			return fmt.Errorf("未知的事件後端: %s", backend)
		}
	}
	return nil
}

// HasBackend 檢查是否啟用指定的事件後端
func (c *AppConfig) HasBackend(name string) bool {
	for _, backend := range c.Events.Backends {
		if backend == name {
			return true
		}
	}
	return false
}

// Address 返回 HTTP 監聽地址
func (c *AppConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
