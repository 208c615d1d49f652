package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds application configuration
type Config struct {
	LedgerURL   string
	LedgerToken string
	TokenSecret string
	CacheDir    string
	LogLevel    string
	HTTPTimeout time.Duration
	StubAddr    string
}

// NewConfig loads configuration from environment variables. Values from a .env file in the
// working directory are applied first; variables already set in the environment win.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	timeout, err := time.ParseDuration(getEnv("HTTP_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}

	cfg := &Config{
		LedgerURL:   getEnv("LEDGER_URL", "http://localhost:8000"),
		LedgerToken: getEnv("LEDGER_TOKEN", ""),
		TokenSecret: getEnv("TOKEN_SECRET", ""),
		CacheDir:    getEnv("CACHE_DIR", ".loan-cache"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		HTTPTimeout: timeout,
		StubAddr:    getEnv("STUB_ADDR", ":8000"),
	}

	if cfg.TokenSecret == "" {
		return nil, fmt.Errorf("TOKEN_SECRET is required")
	}
	if cfg.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return cfg, nil
}

// RequireLedger checks the settings needed to talk to the remote ledger.
func (c *Config) RequireLedger() error {
	if c.LedgerURL == "" {
		return fmt.Errorf("LEDGER_URL is required")
	}
	if c.LedgerToken == "" {
		return fmt.Errorf("LEDGER_TOKEN is required")
	}
	return nil
}

// NewLogger returns a JSON logger at LogLevel, falling back to info for unknown levels.
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
