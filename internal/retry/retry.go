// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

// Package retry re-runs a failing operation with linear backoff.
package retry

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/rinkstats/internal/logging"
	"github.com/tomtom215/rinkstats/internal/metrics"
)

// WaitFunc blocks for d or until ctx is done, returning ctx.Err() in the
// latter case.
type WaitFunc func(ctx context.Context, d time.Duration) error

// Policy controls Do. The zero value makes exactly one attempt.
type Policy struct {
	// MaxRetries is the number of retries after the first attempt.
	MaxRetries int

	// Backoff is the base delay. The wait after failed attempt n is Backoff*n.
	Backoff time.Duration

	// Name labels log lines and the retry counter.
	Name string

	// Wait overrides the sleep between attempts. Nil uses a timer.
	Wait WaitFunc
}

// Delay returns the wait that follows failed attempt n (1-based).
func (p Policy) Delay(attempt int) time.Duration {
	return p.Backoff * time.Duration(attempt)
}

// Do runs op until it succeeds or MaxRetries+1 attempts have failed. The last
// attempt's error is returned as is.
//
// If ctx is cancelled while waiting between attempts, Do stops and returns
// the last attempt's error joined with ctx.Err().
func Do[T any](ctx context.Context, p Policy, op func(ctx context.Context) (T, error)) (T, error) {
	wait := p.Wait
	if wait == nil {
		wait = Sleep
	}
	maxRetries := max(p.MaxRetries, 0)

	var zero T
	for attempt := 1; ; attempt++ {
		v, err := op(ctx)
		if err == nil {
			return v, nil
		}
		if attempt > maxRetries {
			return zero, err
		}

		delay := p.Delay(attempt)
		logging.Warn().Err(err).
			Str("operation", p.Name).
			Int("attempt", attempt).
			Int("max_attempts", maxRetries+1).
			Dur("delay", delay).
			Msg("Retry attempt")
		metrics.RecordRetry(p.Name)

		if werr := wait(ctx, delay); werr != nil {
			return zero, errors.Join(err, werr)
		}
	}
}

// Sleep waits for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
