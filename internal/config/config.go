// Package config provides environment-driven configuration for the server.
package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// Config holds all runtime settings. Values come from environment
// variables; godotenv loading happens in main before Load is called.
type Config struct {
	Port        int
	DatabaseURL string

	LogFile  string
	LogLevel slog.Level
}

// Load reads configuration from environment variables, applying
// defaults for everything except the database URL.
func Load() (*Config, error) {
	port, err := parsePort(getEnv("PORT", "8000"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:        port,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		LogFile:     getEnv("LOG_FILE", "skillmap.log"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "INFO")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("config error: DATABASE_URL is required")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// MaskedDatabaseURL returns the database URL with any password
// replaced, safe for log output.
func (c *Config) MaskedDatabaseURL() string {
	u, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return "(unparseable)"
	}
	return u.Redacted()
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parsePort(s string) (int, error) {
	port, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("config error: invalid PORT %q: %w", s, err)
	}
	return port, nil
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
