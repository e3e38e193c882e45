package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPPort       string
	PostgresDSN    string
	JWTSecret      string
	TokenTTL       time.Duration
	Environment    string
	AllowedOrigins []string
	UploadDir      string
	RedisAddr      string
	DBMaxOpenConns int
	DBMaxIdleConns int
	DBConnMaxIdle  time.Duration
	DBConnMaxLife  time.Duration
	RequestTimeout time.Duration
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		PostgresDSN:    getEnv("DATABASE_URL", ""),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		TokenTTL:       getDuration("TOKEN_TTL", 7*24*time.Hour),
		Environment:    getEnv("ENVIRONMENT", "development"),
		AllowedOrigins: getList("ALLOWED_ORIGINS", []string{"*"}),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		DBMaxOpenConns: getInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns: getInt("DB_MAX_IDLE_CONNS", 10),
		DBConnMaxIdle:  getDuration("DB_CONN_MAX_IDLE", 5*time.Minute),
		DBConnMaxLife:  getDuration("DB_CONN_MAX_LIFE", 30*time.Minute),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 30*time.Second),
	}

	if cfg.PostgresDSN == "" {
		log.Fatal("DATABASE_URL is required")
	}
	// Refusing to start beats signing tokens with a predictable key.
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	return cfg
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getList(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	if len(items) == 0 {
		return fallback
	}
	return items
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}
