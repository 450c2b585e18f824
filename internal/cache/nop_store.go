// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

package cache

import "context"

// NopStore discards writes and always misses. It backs CACHE_ENABLED=false.
type NopStore struct{}

// Put returns the record it would have stored.
func (NopStore) Put(_ context.Context, key string, data []byte) (Record, error) {
	if key == "" {
		return Record{}, ErrEmptyKey
	}
	return Record{Data: cloneBytes(data), CachedAt: now()}, nil
}

func (NopStore) Get(context.Context, string) (Record, bool) { return Record{}, false }
func (NopStore) Ping(context.Context) error                 { return nil }
func (NopStore) Backend() string                            { return BackendNone }
func (NopStore) Close() error                               { return nil }
