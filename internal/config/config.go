package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server struct {
		Port    string
		GinMode string
	}

	Upstream struct {
		BaseURL string
		Timeout time.Duration
	}

	Auth struct {
		JWTSecret string
	}

	CORS struct {
		AllowOrigins string
		AllowMethods string
		AllowHeaders string
	}

	Display struct {
		// UTCOffsetHours shifts dates before display. Kept configurable so a
		// deployment can reproduce the legacy fixed offset, default is plain UTC.
		UTCOffsetHours  int
		RowsPerPage     int
		DefaultLanguage string
	}
}

// Load loads configuration from environment variables
func Load() *Config {
	_ = godotenv.Load()

	config := &Config{}

	config.Server.Port = getEnv("PORT", "8080")
	config.Server.GinMode = getEnv("GIN_MODE", "debug")

	config.Upstream.BaseURL = getEnv("UPSTREAM_BASE_URL", "http://localhost:8500")
	config.Upstream.Timeout = getEnvAsDuration("UPSTREAM_TIMEOUT", 15*time.Second)

	config.Auth.JWTSecret = getEnv("JWT_SECRET", "")

	config.CORS.AllowOrigins = getEnv("CORS_ALLOW_ORIGINS", "*")
	config.CORS.AllowMethods = getEnv("CORS_ALLOW_METHODS", "GET,POST,PUT,PATCH,DELETE,HEAD,OPTIONS")
	config.CORS.AllowHeaders = getEnv("CORS_ALLOW_HEADERS", "Origin,Content-Length,Content-Type,Authorization")

	config.Display.UTCOffsetHours = getEnvAsInt("DISPLAY_UTC_OFFSET_HOURS", 0)
	config.Display.RowsPerPage = getEnvAsInt("DEFAULT_ROWS_PER_PAGE", 5)
	config.Display.DefaultLanguage = getEnv("DEFAULT_LANGUAGE", "en")

	return config
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as int or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration gets an environment variable as a duration or returns a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
