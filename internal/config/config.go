// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

// Package config loads Rinkstats configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in values for every setting
//  2. Config File: optional YAML file (config.yaml, or the path in CONFIG_PATH)
//  3. Environment Variables: override any setting
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	policy := retry.Policy{MaxRetries: cfg.Retry.MaxRetries, Backoff: cfg.RetryBackoff()}
package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
type Config struct {
	App       AppConfig       `koanf:"app"`
	Logging   LoggingConfig   `koanf:"logging"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Provider  ProviderConfig  `koanf:"provider"`
	Dashboard DashboardConfig `koanf:"dashboard"`
	Retry     RetryConfig     `koanf:"retry"`
	Cache     CacheConfig     `koanf:"cache"`
	Export    ExportConfig    `koanf:"export"`
}

// AppConfig identifies the deployment.
type AppConfig struct {
	// Env is "development" or "production".
	Env string `koanf:"env"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Accepted in any case. Default: INFO
	Level string `koanf:"level"`

	// Format is json or console. Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port    int           `koanf:"port"`
	Host    string        `koanf:"host"`
	Timeout time.Duration `koanf:"timeout"`

	// StaticDir holds the built single-page frontend. Empty disables it.
	StaticDir string `koanf:"static_dir"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`

	// ExportRateLimitReqs applies to /api/export within the same window.
	ExportRateLimitReqs int `koanf:"export_rate_limit_reqs"`
}

// ProviderConfig describes the upstream data provider.
type ProviderConfig struct {
	Name                  string `koanf:"name"`
	BaseURL               string `koanf:"base_url"`
	APIKey                string `koanf:"api_key"`
	TimeoutSeconds        int    `koanf:"timeout_seconds"`
	CircuitBreaker        bool   `koanf:"circuit_breaker"`
	BreakerTimeoutSeconds int    `koanf:"breaker_timeout_seconds"`
}

// DashboardConfig holds the defaults handed to the frontend.
type DashboardConfig struct {
	RefreshIntervalSeconds int    `koanf:"refresh_interval_seconds"`
	TournamentYear         int    `koanf:"tournament_year"`
	Division               string `koanf:"division"`
	Theme                  string `koanf:"theme"`
}

// RetryConfig governs provider fetch retries.
type RetryConfig struct {
	MaxRetries     int     `koanf:"max_retries"`
	BackoffSeconds float64 `koanf:"backoff_seconds"`
}

// CacheConfig selects and configures the cache store.
type CacheConfig struct {
	Enabled bool   `koanf:"enabled"`
	Backend string `koanf:"backend"`
	Codec   string `koanf:"codec"`
	Dir     string `koanf:"dir"`

	// TTLSeconds is reported to operators but records never expire.
	TTLSeconds int `koanf:"ttl_seconds"`

	RedisURL         string        `koanf:"redis_url"`
	BadgerGCInterval time.Duration `koanf:"badger_gc_interval"`
}

// ExportConfig controls CSV exports.
type ExportConfig struct {
	Dir       string `koanf:"dir"`
	Delimiter string `koanf:"delimiter"`

	// Archive keeps a copy of every export in Dir.
	Archive bool `koanf:"archive"`
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ProviderTimeout bounds a single provider fetch attempt.
func (c *Config) ProviderTimeout() time.Duration {
	return time.Duration(c.Provider.TimeoutSeconds) * time.Second
}

// BreakerTimeout is how long an open circuit breaker waits before probing.
func (c *Config) BreakerTimeout() time.Duration {
	return time.Duration(c.Provider.BreakerTimeoutSeconds) * time.Second
}

// RetryBackoff is the base retry delay.
func (c *Config) RetryBackoff() time.Duration {
	return time.Duration(c.Retry.BackoffSeconds * float64(time.Second))
}

// CacheTTL returns the configured cache TTL.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}

// RefreshInterval is how often the frontend polls.
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.Dashboard.RefreshIntervalSeconds) * time.Second
}

// Load reads configuration from all sources in priority order:
//  1. Built-in defaults
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Environment variables
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
