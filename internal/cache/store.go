// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

// Package cache persists the last successfully fetched payload per key.
//
// A Store is pure storage: it holds one timestamped Record per key, overwrites
// it wholesale on Put and never expires it. Policy (when to read, when to
// write) lives in the data service.
//
// Get never fails. A missing key, an unreadable file or a record that cannot
// be decoded are all reported as a miss, so callers only ever branch on the
// boolean.
//
// Backends:
//   - FileStore: one <dir>/<key>.json file per key, atomically replaced
//   - BadgerStore: embedded badger key-value store
//   - RedisStore: shared redis instance
//   - NopStore: used when caching is disabled
package cache

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendBadger = "badger"
	BackendRedis  = "redis"
	BackendNone   = "none"
)

var (
	// ErrEmptyKey is returned by Put for an empty key.
	ErrEmptyKey = errors.New("cache: empty key")

	// ErrInvalidKey is returned by Put for keys that cannot name a single record.
	ErrInvalidKey = errors.New("cache: key contains a path separator")
)

// Record is one cached payload. Data holds the payload's JSON encoding
// exactly as it was passed to Put.
type Record struct {
	Data     []byte
	CachedAt time.Time
}

// Store is a key to Record persistence layer.
type Store interface {
	// Put replaces the record for key and returns it. The record is durable
	// when Put returns.
	Put(ctx context.Context, key string, data []byte) (Record, error)

	// Get returns the record for key, or false when there is none or it
	// cannot be decoded.
	Get(ctx context.Context, key string) (Record, bool)

	// Ping reports whether the backend is usable.
	Ping(ctx context.Context) error

	// Backend names the implementation, for logs and metrics.
	Backend() string

	Close() error
}

// TypedRecord is a Record whose payload has been decoded.
type TypedRecord[T any] struct {
	Data     T
	CachedAt time.Time
}

// PutValue JSON-encodes v and stores it under key.
func PutValue[T any](ctx context.Context, s Store, key string, v T) (TypedRecord[T], error) {
	b, err := json.Marshal(v)
	if err != nil {
		return TypedRecord[T]{}, err
	}
	rec, err := s.Put(ctx, key, b)
	if err != nil {
		return TypedRecord[T]{}, err
	}
	return TypedRecord[T]{Data: v, CachedAt: rec.CachedAt}, nil
}

// GetValue loads and decodes the record for key. A payload that does not
// decode into T is a miss.
func GetValue[T any](ctx context.Context, s Store, key string) (TypedRecord[T], bool) {
	rec, ok := s.Get(ctx, key)
	if !ok {
		return TypedRecord[T]{}, false
	}
	var v T
	if err := json.Unmarshal(rec.Data, &v); err != nil {
		return TypedRecord[T]{}, false
	}
	return TypedRecord[T]{Data: v, CachedAt: rec.CachedAt}, true
}

func validateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return ErrInvalidKey
	}
	return nil
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

func now() time.Time {
	return time.Now().UTC()
}
