// Package config provides configuration management for the pipeline studio service.
// It handles loading configuration from environment variables with sensible defaults
// and validates the configuration so the service starts safely.
//
// Environment Variables:
//
// Application Settings:
//   - PORT: Server port (default: 8080)
//   - LOG_LEVEL: Logging level - debug, info, warn or error (default: info)
//   - LOG_FILE: Append logs to this file instead of stdout (default: empty)
//
// Catalog and Fixtures:
//   - CATALOG_PATH: YAML file describing sources and outputs (default: built-in catalog)
//   - SEED_FIXTURES: Seed the sample pipelines and saved queries (default: true)
//
// Builder Sessions:
//   - SESSION_TTL: Idle lifetime of a wizard session, e.g. "30m" or "1d" (default: 30m)
//   - SESSION_LIMIT: Maximum number of open wizard sessions (default: 256)
//
// Rate Limiting:
//   - RATE_LIMIT_ENABLED: Throttle API clients by address (default: true)
//   - RATE_LIMIT_RPS: Requests per second allowed per client (default: 20)
//   - RATE_LIMIT_BURST: Requests a client may make at once (default: 40)
//
// Example usage:
//
//	cfg := config.Load()
//	if err := cfg.Validate(); err != nil {
//		log.Fatalf("Invalid configuration: %v", err)
//	}
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"pipeline-studio/internal/common/errors"
	"pipeline-studio/internal/common/utils"
)

// Config holds all configuration values for the service.
// String fields keep the raw environment value; the typed accessors
// below are only meaningful after Validate has succeeded.
type Config struct {
	// Application settings
	Port     string // Server port number
	LogLevel string // Logging level (debug, info, warn, error)
	LogFile  string // Optional log file path

	// Catalog and fixtures
	CatalogPath  string // Optional YAML catalog file
	SeedFixtures bool   // Whether sample data is loaded at startup

	// Builder sessions
	SessionTTL   string // Idle lifetime of a session (e.g., "30m", "1d")
	SessionLimit string // Maximum number of live sessions

	// Rate limiting
	RateLimitEnabled bool   // Whether API clients are throttled
	RateLimitRPS     string // Sustained requests per second per client
	RateLimitBurst   string // Bucket size per client
}

// Load creates a new Config instance with values loaded from environment variables.
// If an environment variable is not set, the corresponding default value is used.
//
// This function does not validate the configuration - call Validate() on the
// returned Config before use.
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", ""),

		CatalogPath:  getEnv("CATALOG_PATH", ""),
		SeedFixtures: getBoolEnv("SEED_FIXTURES", true),

		SessionTTL:   getEnv("SESSION_TTL", "30m"),
		SessionLimit: getEnv("SESSION_LIMIT", "256"),

		RateLimitEnabled: getBoolEnv("RATE_LIMIT_ENABLED", true),
		RateLimitRPS:     getEnv("RATE_LIMIT_RPS", "20"),
		RateLimitBurst:   getEnv("RATE_LIMIT_BURST", "40"),
	}
}

// getEnv retrieves an environment variable value or returns a default value if not set.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getBoolEnv retrieves a boolean environment variable value or returns a default value.
//
// Accepts the strconv.ParseBool forms ("true", "1", "f", ...). Anything else
// falls back to defaultValue.
func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// Validate checks every field and returns the first problem found as a config error.
//
// This method checks:
//   - PORT is a number between 1 and 65535
//   - LOG_LEVEL is one of debug, info, warn, warning, error
//   - SESSION_TTL parses and is at least one second
//   - SESSION_LIMIT is a positive number
//   - CATALOG_PATH, when set, points at an existing file
//   - RATE_LIMIT_RPS and RATE_LIMIT_BURST are positive numbers when limiting is enabled
func (c *Config) Validate() error {
	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		return errors.ConfigError("PORT must be a valid port number between 1 and 65535").
			WithContext("value", c.Port)
	}

	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.ConfigError("LOG_LEVEL must be one of debug, info, warn, error").
			WithContext("value", c.LogLevel)
	}

	ttl, err := utils.ParseDuration(c.SessionTTL)
	if err != nil {
		return errors.ConfigError(fmt.Sprintf("SESSION_TTL must be a valid duration (e.g., '30m', '1d'): %v", err))
	}
	if ttl < time.Second {
		return errors.ConfigError("SESSION_TTL must be at least 1s").WithContext("value", c.SessionTTL)
	}

	if limit, err := strconv.Atoi(c.SessionLimit); err != nil || limit < 1 {
		return errors.ConfigError("SESSION_LIMIT must be a positive number").
			WithContext("value", c.SessionLimit)
	}

	if c.RateLimitEnabled {
		if rps, err := strconv.Atoi(c.RateLimitRPS); err != nil || rps < 1 {
			return errors.ConfigError("RATE_LIMIT_RPS must be a positive number").
				WithContext("value", c.RateLimitRPS)
		}
		if burst, err := strconv.Atoi(c.RateLimitBurst); err != nil || burst < 1 {
			return errors.ConfigError("RATE_LIMIT_BURST must be a positive number").
				WithContext("value", c.RateLimitBurst)
		}
	}

	if c.CatalogPath != "" {
		info, err := os.Stat(c.CatalogPath)
		if err != nil {
			return errors.ConfigError(fmt.Sprintf("CATALOG_PATH is not readable: %v", err))
		}
		if info.IsDir() {
			return errors.ConfigError("CATALOG_PATH must be a file").WithContext("value", c.CatalogPath)
		}
	}

	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// SessionTTLDuration returns SESSION_TTL as a duration, or 30 minutes if it does not parse.
func (c *Config) SessionTTLDuration() time.Duration {
	ttl, err := utils.ParseDuration(c.SessionTTL)
	if err != nil {
		return 30 * time.Minute
	}
	return ttl
}

// SessionLimitInt returns SESSION_LIMIT as an int, or 256 if it does not parse.
func (c *Config) SessionLimitInt() int {
	limit, err := strconv.Atoi(c.SessionLimit)
	if err != nil || limit < 1 {
		return 256
	}
	return limit
}

// RateLimitRPSInt returns RATE_LIMIT_RPS as an int, or 20 if it does not parse.
func (c *Config) RateLimitRPSInt() int {
	rps, err := strconv.Atoi(c.RateLimitRPS)
	if err != nil || rps < 1 {
		return 20
	}
	return rps
}

// RateLimitBurstInt returns RATE_LIMIT_BURST as an int, or 40 if it does not parse.
func (c *Config) RateLimitBurstInt() int {
	burst, err := strconv.Atoi(c.RateLimitBurst)
	if err != nil || burst < 1 {
		return 40
	}
	return burst
}
