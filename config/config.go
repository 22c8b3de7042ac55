package config

import (
	"fmt"
	"os"
)

type Config struct {
	AppPort  string
	AppEnv   string
	LogLevel string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret string

	// External conversational AI gateway.
	AssistantBaseURL string
	AssistantAPIKey  string

	// External consultation scheduling provider.
	SchedulingBaseURL string
	SchedulingAPIKey  string
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	return &Config{
		AppPort:  get("APP_PORT", "8080"),
		AppEnv:   get("APP_ENV", "dev"),
		LogLevel: get("LOG_LEVEL", "info"),

		DBHost:     get("DB_HOST", "localhost"),
		DBPort:     get("DB_PORT", "5432"),
		DBUser:     get("DB_USER", "postgres"),
		DBPassword: get("DB_PASSWORD", "postgres"),
		DBName:     get("DB_NAME", "kyonodekita"),
		DBSSLMode:  get("DB_SSLMODE", "disable"),

		JWTSecret: get("JWT_SECRET", "dev-secret"),

		AssistantBaseURL: get("ASSISTANT_BASE_URL", "https://api.dify.ai/v1"),
		AssistantAPIKey:  os.Getenv("ASSISTANT_API_KEY"),

		SchedulingBaseURL: get("SCHEDULING_BASE_URL", "https://scheduling.example.com/v1"),
		SchedulingAPIKey:  os.Getenv("SCHEDULING_API_KEY"),
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}
