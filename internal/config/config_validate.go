// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

package config

import (
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Validate checks that configuration values are present and within range.
// Error messages name the environment variable that sets the bad value.
func (c *Config) Validate() error {
	if err := c.validateApp(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateRateLimits(); err != nil {
		return err
	}

	if err := c.validateProvider(); err != nil {
		return err
	}

	if err := c.validateDashboard(); err != nil {
		return err
	}

	if err := c.validateRetry(); err != nil {
		return err
	}

	if err := c.validateCache(); err != nil {
		return err
	}

	if err := c.validateExport(); err != nil {
		return err
	}

	return c.validateLogging()
}

var validAppEnvs = map[string]bool{
	"development": true,
	"production":  true,
}

func (c *Config) validateApp() error {
	if !validAppEnvs[c.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, production")
	}
	return nil
}

// IsProduction returns true when running with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// IsDevelopment returns true when running with APP_ENV=development.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.ExportRateLimitReqs < minRateLimitRequests || c.Security.ExportRateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("EXPORT_RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// ShouldWarnAboutCORS returns true if wildcard CORS is used in production.
func (c *Config) ShouldWarnAboutCORS() bool {
	if !c.IsProduction() {
		return false
	}
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

func (c *Config) validateProvider() error {
	if strings.TrimSpace(c.Provider.Name) == "" {
		return fmt.Errorf("DATA_PROVIDER is required")
	}
	if err := validateBaseURL(c.Provider.BaseURL, "DATA_PROVIDER_BASE_URL"); err != nil {
		return err
	}
	if c.Provider.TimeoutSeconds < 0 {
		return fmt.Errorf("DATA_PROVIDER_TIMEOUT_SECONDS must not be negative")
	}
	if c.Provider.CircuitBreaker && c.Provider.BreakerTimeoutSeconds < 1 {
		return fmt.Errorf("PROVIDER_BREAKER_TIMEOUT_SECONDS must be at least 1 when PROVIDER_CIRCUIT_BREAKER=true")
	}
	return nil
}

var validDivisions = map[string]bool{"men": true, "women": true, "both": true}
var validThemes = map[string]bool{"dark": true, "light": true}

func (c *Config) validateDashboard() error {
	if !validDivisions[c.Dashboard.Division] {
		return fmt.Errorf("DEFAULT_DIVISION must be one of: men, women, both")
	}
	if !validThemes[c.Dashboard.Theme] {
		return fmt.Errorf("DEFAULT_THEME must be one of: dark, light")
	}
	if c.Dashboard.RefreshIntervalSeconds < 1 {
		return fmt.Errorf("REFRESH_INTERVAL_SECONDS must be at least 1")
	}
	if c.Dashboard.TournamentYear < 1920 {
		return fmt.Errorf("DEFAULT_TOURNAMENT_YEAR must be 1920 or later")
	}
	return nil
}

func (c *Config) validateRetry() error {
	if c.Retry.MaxRetries < 0 {
		return fmt.Errorf("MAX_RETRIES must not be negative")
	}
	if c.Retry.BackoffSeconds < 0 {
		return fmt.Errorf("RETRY_BACKOFF_SECONDS must not be negative")
	}
	return nil
}

var validCacheBackends = map[string]bool{"file": true, "badger": true, "redis": true}
var validCacheCodecs = map[string]bool{"json": true, "cbor": true, "msgpack": true}

func (c *Config) validateCache() error {
	if !c.Cache.Enabled {
		return nil
	}
	if !validCacheBackends[c.Cache.Backend] {
		return fmt.Errorf("CACHE_BACKEND must be one of: file, badger, redis")
	}
	if !validCacheCodecs[c.Cache.Codec] {
		return fmt.Errorf("CACHE_CODEC must be one of: json, cbor, msgpack")
	}
	if c.Cache.Backend == "file" && c.Cache.Codec != "json" {
		return fmt.Errorf("CACHE_CODEC must be json when CACHE_BACKEND=file")
	}
	if c.Cache.Backend != "redis" && strings.TrimSpace(c.Cache.Dir) == "" {
		return fmt.Errorf("CACHE_DIR is required when CACHE_BACKEND=%s", c.Cache.Backend)
	}
	if c.Cache.TTLSeconds < 0 {
		return fmt.Errorf("CACHE_TTL_SECONDS must not be negative")
	}
	if c.Cache.Backend == "redis" {
		if _, err := goredis.ParseURL(c.Cache.RedisURL); err != nil {
			return fmt.Errorf("REDIS_URL is invalid: %w", err)
		}
	}
	if c.Cache.Backend == "badger" && c.Cache.BadgerGCInterval < time.Minute {
		return fmt.Errorf("BADGER_GC_INTERVAL must be at least 1m")
	}
	return nil
}

func (c *Config) validateExport() error {
	if c.Export.Delimiter == "" {
		return fmt.Errorf("EXPORT_DELIMITER must not be empty")
	}
	if strings.ContainsAny(c.Export.Delimiter, "\n\r") {
		return fmt.Errorf("EXPORT_DELIMITER must not contain line breaks")
	}
	if c.Export.Archive && strings.TrimSpace(c.Export.Dir) == "" {
		return fmt.Errorf("EXPORT_DEFAULT_DIR is required when EXPORT_ARCHIVE=true")
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format == "" {
		return nil
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
