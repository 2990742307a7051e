package config

import (
	"time"

	"suapa/utils"
)

type DatabaseConfig struct {
	URI             string
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
	DatabaseName    string
	RetryWrites     bool
}

func LoadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		URI:             utils.GetEnvAsString("MONGO_URI", "mongodb://localhost:27017"),
		MaxPoolSize:     utils.GetEnvAsUint64("MONGO_MAX_POOL_SIZE", 100),
		MinPoolSize:     utils.GetEnvAsUint64("MONGO_MIN_POOL_SIZE", 10),
		MaxConnIdleTime: time.Duration(utils.GetEnvAsInt("MONGO_MAX_CONN_IDLE_TIME", 60)) * time.Second,
		DatabaseName:    utils.GetEnvAsString("MONGO_DB", "suapa"),
		RetryWrites:     utils.GetEnvAsBool("MONGO_RETRY_WRITES", true),
	}
}

// AIConfig configures the completion API client. An empty APIKey is valid:
// the client then serves the deterministic local fallback.
type AIConfig struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

func LoadAIConfig() AIConfig {
	return AIConfig{
		APIKey:      utils.GetEnvAsString("OPENAI_API_KEY", ""),
		Model:       utils.GetEnvAsString("OPENAI_MODEL", "gpt-3.5-turbo"),
		BaseURL:     utils.GetEnvAsString("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		Temperature: 0.7,
		MaxTokens:   utils.GetEnvAsInt("OPENAI_MAX_TOKENS", 1024),
		Timeout:     utils.GetEnvAsDuration("OPENAI_TIMEOUT", 30*time.Second),
	}
}

type RedisConfig struct {
	URL      string
	StatsTTL time.Duration
}

func LoadRedisConfig() RedisConfig {
	return RedisConfig{
		URL:      utils.GetEnvAsString("REDIS_URL", ""),
		StatsTTL: utils.GetEnvAsDuration("STATS_CACHE_TTL", 60*time.Second),
	}
}

// AdminConfig drives role assignment: the account with AdminEmail is the
// administrator, everyone else registers as a regular user.
type AdminConfig struct {
	AdminEmail string
}

func LoadAdminConfig() AdminConfig {
	return AdminConfig{
		AdminEmail: utils.GetEnvAsString("ADMIN_EMAIL", "info@suapaai.com"),
	}
}

type GoogleConfig struct {
	ClientID string
}

func LoadGoogleConfig() GoogleConfig {
	return GoogleConfig{
		ClientID: utils.GetEnvAsString("GOOGLE_CLIENT_ID", ""),
	}
}
