package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Addr                string
	Environment         string
	AuthSecret          string
	MaxBodyBytes        int64
	RateLimitPerMinute  int
	RateLimitWindow     time.Duration
	MetricsEnabled      bool
	IncludeStartDefault bool
}

func Load() Config {
	return Config{
		Addr:                getEnv("APP_ADDR", ":8080"),
		Environment:         getEnv("APP_ENV", "development"),
		AuthSecret:          getEnv("AUTH_SECRET", ""),
		MaxBodyBytes:        int64(getEnvInt("MAX_BODY_BYTES", 65536)),
		RateLimitPerMinute:  getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		RateLimitWindow:     time.Minute,
		MetricsEnabled:      getEnvBool("METRICS_ENABLED", true),
		IncludeStartDefault: getEnvBool("INCLUDE_START_DEFAULT", true),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("APP_ADDR is required")
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative")
	}
	if c.Environment == "production" && strings.TrimSpace(c.AuthSecret) == "" {
		return fmt.Errorf("AUTH_SECRET must be set in production")
	}
	return nil
}
