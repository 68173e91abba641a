package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the account service
type Config struct {
	// Server
	Port            string        `yaml:"port"`
	Host            string        `yaml:"host"`
	LogLevel        string        `yaml:"log_level"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// Database
	DatabaseHost     string `yaml:"db_host"`
	DatabasePort     string `yaml:"db_port"`
	DatabaseName     string `yaml:"db_name"`
	DatabaseUser     string `yaml:"db_user"`
	DatabasePassword string `yaml:"-"`
	DatabaseSSLMode  string `yaml:"db_ssl_mode"`

	// Kratos
	KratosPublicURL string `yaml:"kratos_public_url"`
	KratosAdminURL  string `yaml:"kratos_admin_url"`

	// CORS
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Load reads configuration from an optional YAML file (CONFIG_FILE) and
// environment variables. Environment variables take precedence over the file.
func Load() (*Config, error) {
	config := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := config.loadFile(path); err != nil {
			return nil, err
		}
	}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", config.Port)
	config.Host = getEnvOrDefault("HOST", config.Host)
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", config.LogLevel)

	shutdownStr := os.Getenv("SHUTDOWN_TIMEOUT")
	if shutdownStr != "" {
		timeout, err := time.ParseDuration(shutdownStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
		}
		config.ShutdownTimeout = timeout
	}

	// Database configuration
	config.DatabaseHost = getEnvOrDefault("DB_HOST", config.DatabaseHost)
	config.DatabasePort = getEnvOrDefault("DB_PORT", config.DatabasePort)
	config.DatabaseName = getEnvOrDefault("DB_NAME", config.DatabaseName)
	config.DatabaseUser = getEnvOrDefault("DB_USER", config.DatabaseUser)
	config.DatabasePassword = os.Getenv("DB_PASSWORD")
	if config.DatabasePassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	config.DatabaseSSLMode = getEnvOrDefault("DB_SSL_MODE", config.DatabaseSSLMode)

	// Kratos configuration
	config.KratosPublicURL = getEnvOrDefault("KRATOS_PUBLIC_URL", config.KratosPublicURL)
	if config.KratosPublicURL == "" {
		return nil, fmt.Errorf("KRATOS_PUBLIC_URL is required")
	}

	config.KratosAdminURL = getEnvOrDefault("KRATOS_ADMIN_URL", config.KratosAdminURL)
	if config.KratosAdminURL == "" {
		return nil, fmt.Errorf("KRATOS_ADMIN_URL is required")
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		config.AllowedOrigins = splitAndTrim(origins)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func defaults() *Config {
	return &Config{
		Port:            "9600",
		Host:            "0.0.0.0",
		LogLevel:        "info",
		ShutdownTimeout: 30 * time.Second,
		DatabaseHost:    "account-postgres",
		DatabasePort:    "5432",
		DatabaseName:    "account_db",
		DatabaseUser:    "account_user",
		DatabaseSSLMode: "require",
		AllowedOrigins:  []string{"http://localhost:3000"},
	}
}

// loadFile overlays configuration from a YAML file. Missing keys keep
// their current values; the password is never read from the file.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	port, err := strconv.ParseInt(c.Port, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	if c.ShutdownTimeout < time.Second {
		return fmt.Errorf("shutdown timeout must be at least 1 second, got: %v", c.ShutdownTimeout)
	}

	return nil
}

// DatabaseDSN assembles the Postgres connection URL from the database
// settings. Both the pgx pool and the database/sql migration connection
// accept this form, so it is built in one place. The password is escaped
// because DB_PASSWORD may contain URL-reserved characters.
func (c *Config) DatabaseDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DatabaseUser, c.DatabasePassword),
		Host:     net.JoinHostPort(c.DatabaseHost, c.DatabasePort),
		Path:     "/" + c.DatabaseName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DatabaseSSLMode),
	}
	return u.String()
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
