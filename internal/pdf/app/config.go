package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	KeysFile    string // Optional: path to the JSON key file (default: ./api_keys.json)
	VersionFile string // Optional: path to version.json (default: ./version.json)

	RenderTimeout       time.Duration // Optional: per-request render deadline (default: 60s)
	LimiterSweep        time.Duration // Optional: idle rate limit window eviction interval (default: 5m)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 5000)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		KeysFile:            getEnvOrDefault("PDF_KEYS_FILE", "api_keys.json"),
		VersionFile:         getEnvOrDefault("PDF_VERSION_FILE", "version.json"),
		RenderTimeout:       getEnvDurationOrDefault("PDF_RENDER_TIMEOUT", 60*time.Second),
		LimiterSweep:        getEnvDurationOrDefault("PDF_LIMITER_SWEEP", 5*time.Minute),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 5000),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
