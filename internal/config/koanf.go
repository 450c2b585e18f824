// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/rinkstats/config.yaml",
	"/etc/rinkstats/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Env: "development",
		},
		Logging: LoggingConfig{
			Level:  "INFO",
			Format: "json",
			Caller: false,
		},
		Server: ServerConfig{
			Port:      5173,
			Host:      "0.0.0.0",
			Timeout:   30 * time.Second,
			StaticDir: "",
		},
		Security: SecurityConfig{
			CORSOrigins:         []string{"*"},
			RateLimitReqs:       300,
			RateLimitWindow:     time.Minute,
			RateLimitDisabled:   false,
			ExportRateLimitReqs: 30,
		},
		Provider: ProviderConfig{
			Name:                  "sportradar",
			BaseURL:               "https://example.invalid",
			APIKey:                "",
			TimeoutSeconds:        10,
			CircuitBreaker:        true,
			BreakerTimeoutSeconds: 60,
		},
		Dashboard: DashboardConfig{
			RefreshIntervalSeconds: 30,
			TournamentYear:         2026,
			Division:               "both",
			Theme:                  "dark",
		},
		Retry: RetryConfig{
			MaxRetries:     3,
			BackoffSeconds: 2,
		},
		Cache: CacheConfig{
			Enabled:          true,
			Backend:          "file",
			Codec:            "json",
			Dir:              ".cache",
			TTLSeconds:       300,
			RedisURL:         "redis://localhost:6379/0",
			BadgerGCInterval: 10 * time.Minute,
		},
		Export: ExportConfig{
			Dir:       "exports",
			Delimiter: ",",
			Archive:   false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Struct defaults
//  2. YAML config file (optional)
//  3. Environment variables
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	configPath := findConfigFile()
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// MAX_RETRIES -> retry.max_retries
	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Post-process slice fields from comma-separated strings
	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// normalize folds case-insensitive enum values to their canonical form.
func (c *Config) normalize() {
	c.App.Env = strings.ToLower(strings.TrimSpace(c.App.Env))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Cache.Backend = strings.ToLower(strings.TrimSpace(c.Cache.Backend))
	c.Cache.Codec = strings.ToLower(strings.TrimSpace(c.Cache.Codec))
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths lists koanf paths that accept comma-separated env values.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated strings to slices for
// specific configuration paths.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		// If it's already a slice (from YAML file), skip
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		if strVal, ok := val.(string); ok {
			if strVal == "" {
				continue
			}
			parts := strings.Split(strVal, ",")
			trimmed := make([]string, 0, len(parts))
			for _, p := range parts {
				p = strings.TrimSpace(p)
				if p != "" {
					trimmed = append(trimmed, p)
				}
			}
			if len(trimmed) > 0 {
				if err := k.Set(path, trimmed); err != nil {
					return fmt.Errorf("failed to set %s: %w", path, err)
				}
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
var envMappings = map[string]string{
	"app_env": "app.env",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	"http_host":    "server.host",
	"port":         "server.port",
	"http_port":    "server.port",
	"http_timeout": "server.timeout",
	"static_dir":   "server.static_dir",

	"cors_origins":               "security.cors_origins",
	"rate_limit_requests":        "security.rate_limit_reqs",
	"rate_limit_window":          "security.rate_limit_window",
	"disable_rate_limit":         "security.rate_limit_disabled",
	"export_rate_limit_requests": "security.export_rate_limit_reqs",

	"data_provider":                    "provider.name",
	"data_provider_base_url":           "provider.base_url",
	"data_provider_api_key":            "provider.api_key",
	"data_provider_timeout_seconds":    "provider.timeout_seconds",
	"provider_circuit_breaker":         "provider.circuit_breaker",
	"provider_breaker_timeout_seconds": "provider.breaker_timeout_seconds",

	"refresh_interval_seconds": "dashboard.refresh_interval_seconds",
	"default_tournament_year":  "dashboard.tournament_year",
	"default_division":         "dashboard.division",
	"default_theme":            "dashboard.theme",

	"max_retries":           "retry.max_retries",
	"retry_backoff_seconds": "retry.backoff_seconds",

	"cache_enabled":      "cache.enabled",
	"cache_backend":      "cache.backend",
	"cache_codec":        "cache.codec",
	"cache_dir":          "cache.dir",
	"cache_ttl_seconds":  "cache.ttl_seconds",
	"redis_url":          "cache.redis_url",
	"badger_gc_interval": "cache.badger_gc_interval",

	"export_default_dir": "export.dir",
	"export_delimiter":   "export.delimiter",
	"export_archive":     "export.archive",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - MAX_RETRIES -> retry.max_retries
//   - DATA_PROVIDER_BASE_URL -> provider.base_url
//   - CACHE_DIR -> cache.dir
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}

	// For unmapped keys, return empty string to skip them
	// This prevents random environment variables from polluting config
	return ""
}
