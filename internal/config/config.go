package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
// It is the single source of truth for runtime parameters.
type Config struct {
	Port      string
	Env       string
	JWTSecret string

	// SecretKey is the 32-byte key used to encrypt marketplace credentials at rest.
	SecretKey []byte

	// CORSAllowedHosts lists host[:port] values allowed to make credentialed requests.
	CORSAllowedHosts []string

	DB          DatabaseConfig
	Redis       RedisConfig
	Dashboard   DashboardConfig
	Marketplace MarketplaceConfig
	Invoice     InvoiceConfig
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	MigrationsPath string
}

// RedisConfig contains Redis connection parameters. An empty Host disables caching.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Enabled reports whether a Redis host was configured.
func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

// DashboardConfig controls aggregate stats behaviour.
type DashboardConfig struct {
	// FallbackZero makes GET /dashboard/stats answer all-zero stats instead of 500
	// when aggregation fails.
	FallbackZero bool
	StatsTTL     time.Duration
}

// MarketplaceConfig controls the marketplace integration.
type MarketplaceConfig struct {
	// SyncSchedule is a cron expression (with seconds). Empty disables the sync worker.
	SyncSchedule string
	SyncTimeout  time.Duration
	SeedOnStart  bool
}

// InvoiceConfig contains S3 settings for generated invoice documents.
// An empty Bucket keeps the placeholder invoice URL.
type InvoiceConfig struct {
	Bucket     string
	Region     string
	Endpoint   string
	Prefix     string
	PresignTTL time.Duration
}

// Load reads configuration from environment variables. If a .env file exists
// in the working directory, it will be loaded first. It returns a populated
// Config or an error with a human-friendly message.
func Load() (*Config, error) {
	// Load .env if present; ignore error if file is missing so that production
	// environments relying solely on real environment variables keep working.
	_ = godotenv.Load()

	cfg := &Config{}

	// Server
	cfg.Port = getEnv("PORT", "8080")
	cfg.Env = getEnv("ENV", "development")
	cfg.JWTSecret = getEnv("JWT_SECRET", "")
	cfg.CORSAllowedHosts = splitList(getEnv("CORS_ALLOWED_HOSTS", "localhost:3000,127.0.0.1:3000,localhost:5173"))

	// Database
	cfg.DB = DatabaseConfig{
		Host:           getEnv("DB_HOST", ""),
		Port:           getEnv("DB_PORT", "5432"),
		User:           getEnv("DB_USER", ""),
		Password:       getEnv("DB_PASSWORD", ""),
		Name:           getEnv("DB_NAME", ""),
		SSLMode:        getEnv("DB_SSLMODE", "disable"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "file://migrations"),
	}

	// Redis (optional)
	cfg.Redis = RedisConfig{
		Host:     getEnv("REDIS_HOST", ""),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
	}

	// Invoice storage (optional)
	cfg.Invoice = InvoiceConfig{
		Bucket:   getEnv("INVOICE_S3_BUCKET", ""),
		Region:   getEnv("INVOICE_S3_REGION", "ap-south-1"),
		Endpoint: getEnv("INVOICE_S3_ENDPOINT", ""),
		Prefix:   getEnv("INVOICE_S3_PREFIX", "invoices"),
	}

	cfg.Dashboard.FallbackZero = getEnvBool("DASHBOARD_FALLBACK_ZERO", false)
	cfg.Marketplace.SyncSchedule = getEnv("SYNC_SCHEDULE", "")
	cfg.Marketplace.SeedOnStart = getEnvBool("SEED_ON_START", true)

	var err error
	if cfg.Dashboard.StatsTTL, err = parseDurationEnv("DASHBOARD_STATS_TTL", "30s"); err != nil {
		return nil, fmt.Errorf("invalid DASHBOARD_STATS_TTL: %w", err)
	}
	if cfg.Marketplace.SyncTimeout, err = parseDurationEnv("SYNC_TIMEOUT", "2m"); err != nil {
		return nil, fmt.Errorf("invalid SYNC_TIMEOUT: %w", err)
	}
	if cfg.Invoice.PresignTTL, err = parseDurationEnv("INVOICE_PRESIGN_TTL", "15m"); err != nil {
		return nil, fmt.Errorf("invalid INVOICE_PRESIGN_TTL: %w", err)
	}

	if cfg.SecretKey, err = parseSecretKey(getEnv("SETTINGS_SECRET_KEY", "")); err != nil {
		return nil, err
	}

	// Basic validation for DB parameters.
	if cfg.DB.Host == "" || cfg.DB.User == "" || cfg.DB.Name == "" {
		return nil, errors.New("database configuration incomplete: ensure DB_HOST, DB_USER, and DB_NAME are set")
	}

	if cfg.Env == "production" && cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set in production")
	}
	if cfg.Env == "production" && cfg.SecretKey == nil {
		return nil, errors.New("SETTINGS_SECRET_KEY must be set in production")
	}

	return cfg, nil
}

// parseSecretKey decodes a hex encoded 32-byte key. An empty value yields a nil key,
// which leaves marketplace secrets unencrypted outside production.
func parseSecretKey(raw string) ([]byte, error) {
	if raw == "" {
		return nil, nil
	}
	key, err := hex.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid SETTINGS_SECRET_KEY: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("invalid SETTINGS_SECRET_KEY: want 32 bytes, got %d", len(key))
	}
	return key, nil
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvInt returns the value of an environment variable as an integer or a default if empty/invalid.
func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// getEnvBool returns the value of an environment variable as a bool or a default if empty/invalid.
func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// parseDurationEnv reads an environment variable and parses it as time.Duration.
// If the variable is empty, it falls back to the provided default value.
func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must be >= 0")
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, strings.ToLower(p))
		}
	}
	return out
}
