// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

package main

import (
	"fmt"
	"time"

	"github.com/tomtom215/rinkstats/internal/cache"
	"github.com/tomtom215/rinkstats/internal/config"
	"github.com/tomtom215/rinkstats/internal/dataservice"
	"github.com/tomtom215/rinkstats/internal/logging"
	"github.com/tomtom215/rinkstats/internal/provider"
	"github.com/tomtom215/rinkstats/internal/retry"
)

// app holds the components built from configuration.
type app struct {
	store    cache.Store
	provider provider.Provider
	data     *dataservice.Service
}

func newApp(cfg *config.Config) (*app, error) {
	store, err := cache.Open(cache.Options{
		Enabled:  cfg.Cache.Enabled,
		Backend:  cfg.Cache.Backend,
		Codec:    cfg.Cache.Codec,
		Dir:      cfg.Cache.Dir,
		RedisURL: cfg.Cache.RedisURL,
	})
	if err != nil {
		return nil, fmt.Errorf("open cache store: %w", err)
	}
	logging.Info().
		Str("backend", store.Backend()).
		Str("dir", cfg.Cache.Dir).
		Str("redis_url", logging.RedactURL(cfg.Cache.RedisURL)).
		Dur("ttl", cfg.CacheTTL()).
		Msg("Cache store ready")

	p := newProvider(cfg)

	data := dataservice.New(store, p, dataservice.Config{
		ProviderName: cfg.Provider.Name,
		Retry: retry.Policy{
			MaxRetries: cfg.Retry.MaxRetries,
			Backoff:    cfg.RetryBackoff(),
		},
		FetchTimeout: cfg.ProviderTimeout(),
	})

	return &app{store: store, provider: p, data: data}, nil
}

// newProvider returns the configured data source. Only the built-in mock
// source exists; it reports itself under the configured provider name.
func newProvider(cfg *config.Config) provider.Provider {
	var p provider.Provider = provider.NewMock(cfg.Provider.Name)

	if cfg.Provider.CircuitBreaker {
		breaker := provider.DefaultBreakerConfig()
		if t := cfg.BreakerTimeout(); t > 0 {
			breaker.Timeout = t
		}
		p = provider.NewCircuitBreaker(p, breaker)
		logging.Info().Dur("timeout", breaker.Timeout).Msg("Provider circuit breaker enabled")
	}

	logging.Info().
		Str("provider", cfg.Provider.Name).
		Str("base_url", cfg.Provider.BaseURL).
		Str("api_key", logging.MaskSecret(cfg.Provider.APIKey)).
		Msg("Data provider configured")
	return p
}

func (a *app) badger() (*cache.BadgerStore, bool) {
	return cache.BadgerOf(a.store)
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		logging.Error().Err(err).Str("backend", a.store.Backend()).Msg("Error closing cache store")
	}
}

// writeTimeout leaves room for a full retry sequence inside one request.
func writeTimeout(cfg *config.Config) time.Duration {
	budget := cfg.ProviderTimeout()
	for attempt := 1; attempt <= cfg.Retry.MaxRetries; attempt++ {
		budget += cfg.ProviderTimeout() + time.Duration(attempt)*cfg.RetryBackoff()
	}
	if budget < cfg.Server.Timeout {
		return cfg.Server.Timeout
	}
	return budget + 5*time.Second
}
