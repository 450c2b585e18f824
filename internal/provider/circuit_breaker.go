// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

package provider

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/rinkstats/internal/logging"
	"github.com/tomtom215/rinkstats/internal/metrics"
	"github.com/tomtom215/rinkstats/internal/models"
)

// BreakerConfig tunes the circuit breaker.
type BreakerConfig struct {
	// Timeout is how long the breaker stays open before letting probes through.
	Timeout time.Duration

	// MinRequests and FailureRatio decide when a closed breaker opens.
	MinRequests  uint32
	FailureRatio float64
}

// DefaultBreakerConfig opens after 60% failures over at least 10 requests and
// probes again after a minute.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Timeout:      time.Minute,
		MinRequests:  10,
		FailureRatio: 0.6,
	}
}

// CircuitBreaker wraps a Provider with sony/gobreaker. While open, fetches fail
// immediately with gobreaker.ErrOpenState instead of reaching the provider.
type CircuitBreaker struct {
	next Provider
	cb   *gobreaker.CircuitBreaker[any]
	name string
}

var _ Provider = (*CircuitBreaker)(nil)

// NewCircuitBreaker wraps next. The breaker is named after the provider.
//
// Settings:
//   - Max 3 requests in half-open state
//   - 1 minute measurement window while closed
func NewCircuitBreaker(next Provider, cfg BreakerConfig) *CircuitBreaker {
	cbName := "provider-" + next.Name()
	if cfg.MinRequests == 0 {
		cfg.MinRequests = 10
	}
	if cfg.FailureRatio <= 0 {
		cfg.FailureRatio = 0.6
	}

	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0)

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= cfg.FailureRatio
			if shouldTrip {
				logging.Warn().Str("breaker", cbName).Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)
			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &CircuitBreaker{next: next, cb: cb, name: cbName}
}

// Name implements Provider and reports the wrapped provider's name.
func (c *CircuitBreaker) Name() string { return c.next.Name() }

// State returns the current breaker state as "closed", "half-open" or "open".
func (c *CircuitBreaker) State() string { return stateToString(c.cb.State()) }

// FetchTeams implements Provider.
func (c *CircuitBreaker) FetchTeams(ctx context.Context) ([]models.TeamStanding, error) {
	return execute(c, func() ([]models.TeamStanding, error) { return c.next.FetchTeams(ctx) })
}

// FetchPlayers implements Provider.
func (c *CircuitBreaker) FetchPlayers(ctx context.Context) ([]models.PlayerStat, error) {
	return execute(c, func() ([]models.PlayerStat, error) { return c.next.FetchPlayers(ctx) })
}

// FetchGames implements Provider.
func (c *CircuitBreaker) FetchGames(ctx context.Context) ([]models.Game, error) {
	return execute(c, func() ([]models.Game, error) { return c.next.FetchGames(ctx) })
}

// execute runs fn through the breaker and records the outcome.
func execute[T any](c *CircuitBreaker, fn func() (T, error)) (T, error) {
	var zero T
	result, err := c.cb.Execute(func() (any, error) {
		return fn()
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(c.name, "rejected").Inc()
			logging.Warn().Err(err).Str("breaker", c.name).Msg("[CIRCUIT BREAKER] Request rejected")
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(c.name, "failure").Inc()
		}
		return zero, err
	}
	metrics.CircuitBreakerRequests.WithLabelValues(c.name, "success").Inc()

	typed, ok := result.(T)
	if !ok {
		return zero, errors.New("circuit breaker: unexpected result type")
	}
	return typed, nil
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
