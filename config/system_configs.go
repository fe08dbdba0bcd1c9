package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// SystemConfigs is the process configuration, loaded once at startup and
// immutable for the process lifetime.
type SystemConfigs struct {
	Port            string
	MongoURI        string
	AllowedOrigins  []string
	RateLimitMax    int
	RateLimitWindow time.Duration
	QuotePace       time.Duration
	QuoteTimeout    time.Duration
	Environment     string
}

func LoadConfigs() (*SystemConfigs, error) {
	godotenv.Load()

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		return nil, fmt.Errorf("environment variable 'MONGO_URI' is empty or not set")
	}

	cfg := &SystemConfigs{
		Port:            getEnv("PORT", "8080"),
		MongoURI:        mongoURI,
		AllowedOrigins:  splitOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:3001")),
		RateLimitMax:    getEnvInt("RATE_LIMIT_MAX", 15),
		RateLimitWindow: getEnvDuration("RATE_LIMIT_WINDOW", 5*time.Second),
		QuotePace:       getEnvDuration("QUOTE_PACE", 100*time.Millisecond),
		QuoteTimeout:    getEnvDuration("QUOTE_TIMEOUT", 5*time.Second),
		Environment:     getEnv("ENVIRONMENT", "development"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return fallback
	}
	return d
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
