// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

package cache

import (
	"context"

	"github.com/tomtom215/rinkstats/internal/metrics"
)

// instrumented records hit, miss and error counts for the wrapped store.
type instrumented struct {
	Store
}

// Instrument wraps s so every Get and Put is counted in
// rinkstats_cache_operations_total.
func Instrument(s Store) Store {
	if _, ok := s.(*instrumented); ok {
		return s
	}
	return &instrumented{Store: s}
}

// Unwrap returns the underlying store.
func (i *instrumented) Unwrap() Store { return i.Store }

func (i *instrumented) Put(ctx context.Context, key string, data []byte) (Record, error) {
	rec, err := i.Store.Put(ctx, key, data)
	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.RecordCacheOp(i.Backend(), "put", result)
	return rec, err
}

func (i *instrumented) Get(ctx context.Context, key string) (Record, bool) {
	rec, ok := i.Store.Get(ctx, key)
	result := "miss"
	if ok {
		result = "hit"
	}
	metrics.RecordCacheOp(i.Backend(), "get", result)
	return rec, ok
}
