package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadDotEnv 載入 .env 檔，不存在時僅提示
func LoadDotEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("Warning: .env file not found or cannot be loaded: %v", err)
	}
}

// applyEnv 以環境變數覆蓋配置，未設定的變數保留原值
func applyEnv(cfg *AppConfig) {
	cfg.Server.Host = getEnv("SERVER_HOST", cfg.Server.Host)
	cfg.Server.Port = getEnvAsInt("SERVER_PORT", cfg.Server.Port)
	cfg.Server.Mode = getEnv("SERVER_MODE", cfg.Server.Mode)
	cfg.Server.Swagger = getEnvAsBool("SERVER_SWAGGER", cfg.Server.Swagger)

	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Development = getEnvAsBool("LOG_DEVELOPMENT", cfg.Log.Development)

	cfg.Simulator.WarmupDraws = getEnvAsInt("WARMUP_DRAWS", cfg.Simulator.WarmupDraws)
	cfg.Simulator.AIPredictions = getEnvAsInt("AI_PREDICTIONS", cfg.Simulator.AIPredictions)
	cfg.Simulator.TicketCost = getEnvAsInt("TICKET_COST", cfg.Simulator.TicketCost)
	cfg.Simulator.MaxUserSets = getEnvAsInt("MAX_USER_SETS", cfg.Simulator.MaxUserSets)
	cfg.Simulator.MaxRoundsPerRequest = getEnvAsInt("MAX_ROUNDS_PER_REQUEST", cfg.Simulator.MaxRoundsPerRequest)
	cfg.Simulator.Seed = getEnvAsInt64("LOTTO_SEED", cfg.Simulator.Seed)

	if backends := os.Getenv("EVENT_BACKENDS"); backends != "" {
		cfg.Events.Backends = splitList(backends)
	}
	cfg.Events.Redis.Addr = getEnv("REDIS_ADDR", cfg.Events.Redis.Addr)
	cfg.Events.Redis.Username = getEnv("REDIS_USERNAME", cfg.Events.Redis.Username)
	cfg.Events.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Events.Redis.Password)
	cfg.Events.Redis.DB = getEnvAsInt("REDIS_DB", cfg.Events.Redis.DB)
	cfg.Events.Redis.Channel = getEnv("REDIS_CHANNEL", cfg.Events.Redis.Channel)
	cfg.Events.NATS.URL = getEnv("NATS_URL", cfg.Events.NATS.URL)
	cfg.Events.NATS.Subject = getEnv("NATS_SUBJECT", cfg.Events.NATS.Subject)

	cfg.Metrics.Enabled = getEnvAsBool("METRICS_ENABLED", cfg.Metrics.Enabled)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
