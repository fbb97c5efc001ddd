// Package config loads cometd settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Content
	ContentPath     string
	ContentDebounce time.Duration
	Watch           bool

	// Contact relay
	WebhookURL   string
	RelayTimeout time.Duration
	MaxBodyBytes int64

	// Contact QR code edge length in pixels
	QRSize int

	// Logging
	LogLevel string
	Dev      bool

	ShutdownTimeout time.Duration
}

func Load() Config {
	cfg := Config{
		Port: envOr("COMET_PORT", "8080"),

		ContentPath:     os.Getenv("COMET_CONTENT"),
		ContentDebounce: envDuration("COMET_CONTENT_DEBOUNCE", 250*time.Millisecond),
		Watch:           envBool("COMET_WATCH", true),

		WebhookURL:   os.Getenv("COMET_WEBHOOK_URL"),
		RelayTimeout: envDuration("COMET_RELAY_TIMEOUT", 15*time.Second),
		MaxBodyBytes: envInt64("COMET_MAX_BODY_BYTES", 65536), // 64KB

		QRSize: envInt("COMET_QR_SIZE", 256),

		LogLevel: envOr("COMET_LOG_LEVEL", "info"),
		Dev:      envBool("COMET_DEV", false),

		ShutdownTimeout: envDuration("COMET_SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	if cfg.ContentDebounce <= 0 {
		cfg.ContentDebounce = 250 * time.Millisecond
	}
	if cfg.RelayTimeout <= 0 {
		cfg.RelayTimeout = 15 * time.Second
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 65536
	}
	if cfg.QRSize <= 0 {
		cfg.QRSize = 256
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	return cfg
}

// Validate reports settings serve cannot start without.
func (c Config) Validate() error {
	if c.WebhookURL == "" {
		return fmt.Errorf("COMET_WEBHOOK_URL is required")
	}
	if c.Port == "" {
		return fmt.Errorf("COMET_PORT is required")
	}
	if c.QRSize < 64 || c.QRSize > 2048 {
		return fmt.Errorf("COMET_QR_SIZE must be between 64 and 2048, got %d", c.QRSize)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("COMET_LOG_LEVEL must be debug, info, warn or error, got %q", c.LogLevel)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
