// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

package cache

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/tomtom215/rinkstats/internal/logging"
)

// redisKeyPrefix namespaces cache records in a shared redis database.
const redisKeyPrefix = "rinkstats:cache:"

// ErrNilClient is returned by NewRedisStore for a nil client.
var ErrNilClient = errors.New("cache: nil redis client")

// RedisStore keeps records in redis. Records never expire.
type RedisStore struct {
	rdb         goredis.UniversalClient
	codec       Codec
	closeClient bool
}

// NewRedisStore wraps an existing client. When closeClient is true the store
// owns the client and closes it on Close.
func NewRedisStore(rdb goredis.UniversalClient, codec Codec, closeClient bool) (*RedisStore, error) {
	if rdb == nil {
		return nil, ErrNilClient
	}
	if codec == nil {
		codec = JSONCodec{}
	}
	return &RedisStore{rdb: rdb, codec: codec, closeClient: closeClient}, nil
}

// DialRedis parses a redis:// URL and returns a store that owns its client.
func DialRedis(url string, codec Codec) (*RedisStore, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return NewRedisStore(goredis.NewClient(opts), codec, true)
}

// Put implements Store.
func (s *RedisStore) Put(ctx context.Context, key string, data []byte) (Record, error) {
	if key == "" {
		return Record{}, ErrEmptyKey
	}
	rec := Record{Data: cloneBytes(data), CachedAt: now()}
	b, err := s.codec.Encode(rec)
	if err != nil {
		return Record{}, fmt.Errorf("encode cache record %q: %w", key, err)
	}
	if err := s.rdb.Set(ctx, redisKeyPrefix+key, b, 0).Err(); err != nil {
		return Record{}, fmt.Errorf("store cache record %q: %w", key, err)
	}
	return rec, nil
}

// Get implements Store. Transport errors are logged and reported as a miss.
func (s *RedisStore) Get(ctx context.Context, key string) (Record, bool) {
	b, err := s.rdb.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return Record{}, false
	}
	if err != nil {
		logging.Warn().Err(err).Str("key", key).Msg("Redis cache read failed, treating as miss")
		return Record{}, false
	}
	rec, err := s.codec.Decode(b)
	if err != nil {
		logging.Warn().Err(err).Str("key", key).Str("codec", s.codec.Name()).Msg("Redis cache record corrupt, treating as miss")
		return Record{}, false
	}
	return rec, true
}

// Ping implements Store.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// Backend implements Store.
func (s *RedisStore) Backend() string { return BackendRedis }

// Close releases the client only when the store owns it. Repeated calls are
// no-ops.
func (s *RedisStore) Close() error {
	if !s.closeClient {
		return nil
	}
	if err := s.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
		return err
	}
	return nil
}
