// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

// Package metrics holds the Prometheus collectors for Rinkstats. Collectors
// register with the default registry at init and are exposed on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Load outcomes reported by the data service.
const (
	OutcomeFresh  = "fresh"
	OutcomeStale  = "stale"
	OutcomeFailed = "failed"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rinkstats_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rinkstats_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 15},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rinkstats_api_active_requests",
			Help: "Number of API requests currently in flight",
		},
	)

	// Data service metrics
	DataLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rinkstats_data_loads_total",
			Help: "Data service loads by resource and outcome (fresh, stale, failed)",
		},
		[]string{"resource", "outcome"},
	)

	RetryAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rinkstats_retry_attempts_total",
			Help: "Failed attempts that were followed by a retry",
		},
		[]string{"operation"},
	)

	// Cache store metrics
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rinkstats_cache_operations_total",
			Help: "Cache store operations by backend, operation and result",
		},
		[]string{"backend", "op", "result"}, // op: get, put; result: hit, miss, ok, error
	)

	BadgerGCRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rinkstats_badger_gc_runs_total",
			Help: "Badger value log GC runs by result",
		},
		[]string{"result"}, // rewritten, noop, error
	)

	// Circuit breaker metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "rinkstats_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rinkstats_circuit_breaker_requests_total",
			Help: "Requests through the circuit breaker by result",
		},
		[]string{"name", "result"}, // success, failure, rejected
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rinkstats_circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	// Export metrics
	ExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rinkstats_exports_total",
			Help: "CSV exports served by resource",
		},
		[]string{"resource"},
	)

	ExportRows = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rinkstats_export_rows",
			Help:    "Rows per CSV export",
			Buckets: prometheus.ExponentialBuckets(1, 4, 6),
		},
		[]string{"resource"},
	)
)

// RecordAPIRequest records one completed HTTP request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments (true) or decrements (false) the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordDataLoad records the outcome of a data service load.
func RecordDataLoad(resource, outcome string) {
	DataLoadsTotal.WithLabelValues(resource, outcome).Inc()
}

// RecordRetry records a failed attempt that will be retried.
func RecordRetry(operation string) {
	RetryAttemptsTotal.WithLabelValues(operation).Inc()
}

// RecordCacheOp records a cache store operation.
func RecordCacheOp(backend, op, result string) {
	CacheOperationsTotal.WithLabelValues(backend, op, result).Inc()
}

// RecordExport records a served CSV export.
func RecordExport(resource string, rows int) {
	ExportsTotal.WithLabelValues(resource).Inc()
	ExportRows.WithLabelValues(resource).Observe(float64(rows))
}
