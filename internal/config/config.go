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

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Client   ClientConfig
	Archive  ArchiveConfig
}

type DatabaseConfig struct {
	Driver     string
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// ClientConfig holds settings for attendancectl
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// ArchiveConfig controls the monthly spreadsheet archive job. An empty Dir
// disables it.
type ArchiveConfig struct {
	Dir      string
	Interval time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Failed to load .env file", "error", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Driver:     strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
		Host:       getEnv("DB_HOST", "localhost"),
		Port:       dbPort,
		User:       getEnv("DB_USER", "postgres"),
		Password:   getEnv("DB_PASSWORD", ""),
		Name:       getEnv("DB_NAME", "attendance"),
		SSLMode:    getEnv("DB_SSL_MODE", "disable"),
		SQLitePath: getEnv("SQLITE_PATH", "./attendance.db"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	// Client configuration
	config.Client, err = loadClient()
	if err != nil {
		return nil, err
	}

	// Archive configuration
	archiveInterval, err := time.ParseDuration(getEnv("ARCHIVE_INTERVAL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid ARCHIVE_INTERVAL: %w", err)
	}

	config.Archive = ArchiveConfig{
		Dir:      getEnv("ARCHIVE_DIR", ""),
		Interval: archiveInterval,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// LoadClient reads only the client section. attendancectl uses it so that
// it does not need database settings.
func LoadClient() (ClientConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Failed to load .env file", "error", err)
	}

	cfg, err := loadClient()
	if err != nil {
		return ClientConfig{}, err
	}
	if cfg.Timeout <= 0 {
		return ClientConfig{}, fmt.Errorf("ATTENDANCE_API_TIMEOUT must be positive")
	}
	return cfg, nil
}

func loadClient() (ClientConfig, error) {
	timeout, err := time.ParseDuration(getEnv("ATTENDANCE_API_TIMEOUT", "10s"))
	if err != nil {
		return ClientConfig{}, fmt.Errorf("invalid ATTENDANCE_API_TIMEOUT: %w", err)
	}

	return ClientConfig{
		BaseURL: strings.TrimRight(getEnv("ATTENDANCE_API_URL", "http://localhost:8080"), "/"),
		Timeout: timeout,
	}, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required")
		}
	case DriverSQLite:
		if c.Database.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	if c.Client.Timeout <= 0 {
		return fmt.Errorf("ATTENDANCE_API_TIMEOUT must be positive")
	}
	if c.Archive.Dir != "" && c.Archive.Interval <= 0 {
		return fmt.Errorf("ARCHIVE_INTERVAL must be positive")
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

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env, fallback string) []string {
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
