package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

type Config struct {
	Database  DatabaseConfig
	JWT       JWTConfig
	App       AppConfig
	Office    OfficeConfig
	Redis     RedisConfig
	Finalizer FinalizerConfig
	Bootstrap BootstrapConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// OfficeConfig holds the office-local settings used for day boundaries and display times.
type OfficeConfig struct {
	Timezone string
}

// RedisConfig holds the office-config cache settings. An empty Addr disables caching.
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	OfficeTTL time.Duration
}

// FinalizerConfig controls the background job that persists last month's summaries.
type FinalizerConfig struct {
	Enabled  bool
	Interval time.Duration
	// RunOnce finalizes the previous month a single time and exits instead of serving.
	RunOnce bool
}

// BootstrapConfig seeds the first superadmin account on startup when set.
type BootstrapConfig struct {
	SuperAdminUsername string
	SuperAdminPassword string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	} else if err != nil {
		slog.Info("No .env file found, using process environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	dbMaxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: dbMaxConns,
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "5000"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	config.Office = OfficeConfig{
		Timezone: getEnv("OFFICE_TIMEZONE", "Asia/Kolkata"),
	}

	// Redis configuration
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	officeTTL, err := time.ParseDuration(getEnv("REDIS_OFFICE_TTL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_OFFICE_TTL: %w", err)
	}

	config.Redis = RedisConfig{
		Addr:      getEnv("REDIS_ADDR", ""),
		Password:  getEnv("REDIS_PASSWORD", ""),
		DB:        redisDB,
		OfficeTTL: officeTTL,
	}

	// Summary finalizer configuration
	finalizerEnabled, err := strconv.ParseBool(getEnv("SUMMARY_FINALIZER_ENABLED", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid SUMMARY_FINALIZER_ENABLED: %w", err)
	}
	finalizerInterval, err := time.ParseDuration(getEnv("SUMMARY_FINALIZER_INTERVAL", "6h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SUMMARY_FINALIZER_INTERVAL: %w", err)
	}

	finalizerRunOnce, err := strconv.ParseBool(getEnv("SUMMARY_FINALIZER_RUN_ONCE", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid SUMMARY_FINALIZER_RUN_ONCE: %w", err)
	}

	config.Finalizer = FinalizerConfig{
		Enabled:  finalizerEnabled,
		Interval: finalizerInterval,
		RunOnce:  finalizerRunOnce,
	}

	config.Bootstrap = BootstrapConfig{
		SuperAdminUsername: getEnv("SUPERADMIN_USERNAME", ""),
		SuperAdminPassword: getEnv("SUPERADMIN_PASSWORD", ""),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if _, err := time.LoadLocation(c.Office.Timezone); err != nil {
		return fmt.Errorf("invalid OFFICE_TIMEZONE %q: %w", c.Office.Timezone, err)
	}
	if c.Finalizer.Enabled && c.Finalizer.Interval <= 0 {
		return fmt.Errorf("SUMMARY_FINALIZER_INTERVAL must be positive")
	}
	if (c.Bootstrap.SuperAdminUsername == "") != (c.Bootstrap.SuperAdminPassword == "") {
		return fmt.Errorf("SUPERADMIN_USERNAME and SUPERADMIN_PASSWORD must be set together")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// Location returns the office time zone. Validate guarantees it loads.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Office.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string, fallback string) []string {
	value := getEnv(env, fallback)
	if value == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
