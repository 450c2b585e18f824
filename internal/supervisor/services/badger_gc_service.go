// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

package services

import (
	"context"
	"time"

	"github.com/tomtom215/rinkstats/internal/logging"
	"github.com/tomtom215/rinkstats/internal/metrics"
)

// DefaultGCDiscardRatio is the fraction of a value log file that must be
// garbage before badger rewrites it.
const DefaultGCDiscardRatio = 0.5

// ValueLogCollector is satisfied by *cache.BadgerStore.
type ValueLogCollector interface {
	RunGC(discardRatio float64) (int, error)
}

// BadgerGCService runs badger value log GC on a fixed interval. Every cache
// write replaces a whole resource, so the value log accumulates garbage
// steadily.
type BadgerGCService struct {
	store        ValueLogCollector
	interval     time.Duration
	discardRatio float64
	name         string
}

// NewBadgerGCService creates a GC service. A non-positive interval defaults
// to ten minutes.
func NewBadgerGCService(store ValueLogCollector, interval time.Duration) *BadgerGCService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &BadgerGCService{
		store:        store,
		interval:     interval,
		discardRatio: DefaultGCDiscardRatio,
		name:         "badger-gc",
	}
}

// Serve implements suture.Service. GC errors are logged and counted but do
// not stop the service.
func (s *BadgerGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.collect()
		}
	}
}

func (s *BadgerGCService) collect() {
	start := time.Now()
	rewritten, err := s.store.RunGC(s.discardRatio)

	switch {
	case err != nil:
		metrics.BadgerGCRuns.WithLabelValues("error").Inc()
		logging.Warn().Err(err).Int("rewritten", rewritten).Msg("Badger value log GC failed")
	case rewritten == 0:
		metrics.BadgerGCRuns.WithLabelValues("noop").Inc()
	default:
		metrics.BadgerGCRuns.WithLabelValues("rewritten").Inc()
		logging.Debug().
			Int("rewritten", rewritten).
			Dur("duration", time.Since(start)).
			Msg("Badger value log GC rewrote files")
	}
}

// String implements fmt.Stringer.
func (s *BadgerGCService) String() string {
	return s.name
}
