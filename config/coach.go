package config

import (
	"main/utils"
	"time"
)

// CoachConfig configures the external LLM used for coaching messages.
// An empty APIKey is a valid state: coaching degrades to null messages.
type CoachConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

func LoadCoachConfig() CoachConfig {
	return CoachConfig{
		BaseURL: utils.GetEnvAsString("COACH_BASE_URL", "https://api.openai.com/v1"),
		APIKey:  utils.GetEnvAsString("COACH_API_KEY", ""),
		Model:   utils.GetEnvAsString("COACH_MODEL", "gpt-4o-mini"),
		Timeout: utils.GetEnvAsDuration("COACH_TIMEOUT", 10*time.Second),
	}
}

// RedisConfig configures the outbox queue connection.
type RedisConfig struct {
	URL      string
	QueueKey string
}

func LoadRedisConfig() RedisConfig {
	return RedisConfig{
		URL:      utils.GetEnvAsString("REDIS_URL", "redis://localhost:6379/0"),
		QueueKey: utils.GetEnvAsString("EVENT_QUEUE_KEY", "toplan:events"),
	}
}
