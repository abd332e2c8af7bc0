package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Report   ReportConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds the shared secret used to verify tokens issued by the
// external auth service.
type JWTConfig struct {
	Secret string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port          int
	Env           string
	LogLevel      string
	AllowedOrigin string
}

// ReportConfig controls report generation behavior.
type ReportConfig struct {
	// Concurrency bounds the number of employee-day derivations running
	// in parallel, to stay within the database connection pool.
	Concurrency int
	// OnError is either "skip" (record the employee-day as unavailable
	// and continue) or "abort" (fail the whole report).
	OnError string
}

func Load() (*Config, error) {
	// .env is optional; deployments may set the environment directly.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "biotrack-attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:          appPort,
		Env:           getEnv("APP_ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	// Report configuration
	reportConcurrency, err := strconv.Atoi(getEnv("REPORT_CONCURRENCY", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_CONCURRENCY: %w", err)
	}

	config.Report = ReportConfig{
		Concurrency: reportConcurrency,
		OnError:     strings.ToLower(getEnv("REPORT_ON_ERROR", "skip")),
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
	if c.Report.Concurrency < 1 {
		return fmt.Errorf("REPORT_CONCURRENCY must be at least 1")
	}
	if c.Report.OnError != "skip" && c.Report.OnError != "abort" {
		return fmt.Errorf("REPORT_ON_ERROR must be 'skip' or 'abort'")
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

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
