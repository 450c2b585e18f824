// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

// Package dataservice serves provider data through a cache-aside layer.
//
// Every load fetches from the provider under the retry policy. A successful
// fetch is written to the cache store and returned as fresh. When the fetch
// (or the cache write) fails, the last cached record for the key is returned
// marked stale together with the failure message. Only when nothing has ever
// been cached does the failure reach the caller.
//
// There is no expiry and no de-duplication: each call performs its own fetch
// and the last successful write for a key wins.
package dataservice

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/rinkstats/internal/cache"
	"github.com/tomtom215/rinkstats/internal/logging"
	"github.com/tomtom215/rinkstats/internal/metrics"
	"github.com/tomtom215/rinkstats/internal/models"
	"github.com/tomtom215/rinkstats/internal/provider"
	"github.com/tomtom215/rinkstats/internal/retry"
)

// Cache keys, one per resource.
const (
	KeyTeams   = "teams"
	KeyPlayers = "players"
	KeyGames   = "games"
)

// DefaultErrorMessage is reported for stale responses whose failure carried
// no message.
const DefaultErrorMessage = "provider_failed"

// ErrGameNotFound is returned by Game when no game has the requested id.
var ErrGameNotFound = errors.New("game not found")

// Config tunes a Service.
type Config struct {
	// ProviderName is reported in every envelope. Defaults to the provider's
	// own name.
	ProviderName string

	// Retry governs fetch attempts. Retry.Name is set per resource.
	Retry retry.Policy

	// FetchTimeout bounds each individual fetch attempt. Zero means no bound.
	FetchTimeout time.Duration
}

// Service implements cache-aside loads over a provider and a cache store.
type Service struct {
	store    cache.Store
	provider provider.Provider
	cfg      Config
}

// New returns a Service.
func New(store cache.Store, p provider.Provider, cfg Config) *Service {
	if cfg.ProviderName == "" {
		cfg.ProviderName = p.Name()
	}
	return &Service{store: store, provider: p, cfg: cfg}
}

// ProviderName is the name reported in envelopes.
func (s *Service) ProviderName() string { return s.cfg.ProviderName }

// Store returns the cache store backing the service.
func (s *Service) Store() cache.Store { return s.store }

// Load fetches key through fetcher with retries and caches the result.
//
//   - fetch ok, cache write ok: fresh envelope
//   - otherwise, cached record present: stale envelope carrying the error message
//   - otherwise: the error, unchanged
func Load[T any](ctx context.Context, s *Service, key string, fetcher func(ctx context.Context) (T, error)) (*models.Envelope[T], error) {
	policy := s.cfg.Retry
	policy.Name = key

	data, err := retry.Do(ctx, policy, withTimeout(s.cfg.FetchTimeout, fetcher))
	if err == nil {
		var rec cache.TypedRecord[T]
		rec, err = cache.PutValue(ctx, s.store, key, data)
		if err == nil {
			metrics.RecordDataLoad(key, metrics.OutcomeFresh)
			return &models.Envelope[T]{
				Data:     data,
				Stale:    false,
				CachedAt: rec.CachedAt,
				Provider: s.cfg.ProviderName,
			}, nil
		}
		logging.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("Cache write failed")
	}

	cached, ok := cache.GetValue[T](ctx, s.store, key)
	if !ok {
		metrics.RecordDataLoad(key, metrics.OutcomeFailed)
		logging.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("Load failed with no cached fallback")
		return nil, err
	}

	msg := err.Error()
	if msg == "" {
		msg = DefaultErrorMessage
	}
	metrics.RecordDataLoad(key, metrics.OutcomeStale)
	logging.Ctx(ctx).Warn().Err(err).Str("key", key).Time("cached_at", cached.CachedAt).Msg("Serving stale data")
	return &models.Envelope[T]{
		Data:     cached.Data,
		Stale:    true,
		CachedAt: cached.CachedAt,
		Provider: s.cfg.ProviderName,
		Error:    msg,
	}, nil
}

// withTimeout bounds each call of fetcher by d.
func withTimeout[T any](d time.Duration, fetcher func(ctx context.Context) (T, error)) func(ctx context.Context) (T, error) {
	if d <= 0 {
		return fetcher
	}
	return func(ctx context.Context) (T, error) {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return fetcher(ctx)
	}
}
