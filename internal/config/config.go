package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config holds environment-based settings
type Config struct {
	Environment    string
	LogLevel       string
	ServerAddress  string
	CORSOrigins    []string
	StoreDriver    string
	DatabaseURL    string
	MigrationsPath string

	RedisAddress  string
	RedisUsername string
	RedisPassword string
	CacheTTL      time.Duration

	MQTTBrokerURL string
	MQTTClientID  string

	AladhanBaseURL  string
	Latitude        float64
	Longitude       float64
	Method          int
	School          int
	UpstreamTimeout time.Duration
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Environment:    getenv("APP_ENV", "production"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		ServerAddress:  getenv("SERVER_ADDRESS", ":8080"),
		StoreDriver:    getenv("STORE_DRIVER", StoreDriverPostgres),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: getenv("MIGRATIONS_PATH", "./migrations"),

		RedisAddress:  os.Getenv("REDIS_ADDRESS"),
		RedisUsername: os.Getenv("REDIS_USERNAME"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		MQTTBrokerURL: os.Getenv("MQTT_BROKER_URL"),
		MQTTClientID:  getenv("MQTT_CLIENT_ID", "namaz-server"),

		AladhanBaseURL: getenv("ALADHAN_BASE_URL", "https://api.aladhan.com/v1"),
	}

	for _, origin := range strings.Split(getenv("CORS_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	switch cfg.StoreDriver {
	case StoreDriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
	case StoreDriverMemory:
	default:
		return nil, fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", StoreDriverPostgres, StoreDriverMemory, cfg.StoreDriver)
	}

	var err error
	if cfg.Latitude, err = parseFloat("LATITUDE", "17.3850"); err != nil {
		return nil, err
	}
	if cfg.Longitude, err = parseFloat("LONGITUDE", "78.4867"); err != nil {
		return nil, err
	}
	if cfg.Method, err = parseInt("CALC_METHOD", "2"); err != nil {
		return nil, err
	}
	if cfg.School, err = parseInt("SCHOOL", "1"); err != nil {
		return nil, err
	}
	if cfg.UpstreamTimeout, err = parseDuration("UPSTREAM_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	if cfg.CacheTTL, err = parseDuration("CACHE_TTL", "24h"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseFloat(key, fallback string) (float64, error) {
	v, err := strconv.ParseFloat(getenv(key, fallback), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func parseInt(key, fallback string) (int, error) {
	v, err := strconv.Atoi(getenv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func parseDuration(key, fallback string) (time.Duration, error) {
	v, err := time.ParseDuration(getenv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return v, nil
}
