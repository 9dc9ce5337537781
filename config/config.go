package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP server
	ServerAddr string

	// Redis Configuration (empty = in-memory cache)
	RedisAddr string

	// Output precision for API responses and reports
	ReportPrecision int

	// Rate limiting
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		ServerAddr:        getEnv("SERVER_ADDR", ":8080"),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		ReportPrecision:   getEnvInt("REPORT_PRECISION", 2),
		RateLimitRequests: getEnvInt("RATE_LIMIT_REQUESTS", 5),
		RateLimitWindow:   time.Duration(getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: failed to parse %s as int, using default: %v", key, err)
		return defaultValue
	}
	return intValue
}
