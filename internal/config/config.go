package config

import (
	"os"
	"strings"
)

// Config stores the application configuration.
type Config struct {
	Port               string
	DBDriver           string // "sqlite" or "postgres"
	DatabaseURL        string
	CORSAllowedOrigins []string
	LogLevel           string
}

// Load reads the configuration from the environment, applying defaults.
func Load() Config {
	return Config{
		Port:               getEnv("PORT", "3003"),
		DBDriver:           getEnv("DB_DRIVER", "sqlite"),
		DatabaseURL:        getEnv("DATABASE_URL", "videos.db"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}
}

// getEnv retrieves the value of an environment variable or returns a default value if not set.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
