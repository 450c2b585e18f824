// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/rinkstats/internal/logging"
)

// badgerKeyPrefix namespaces cache records inside the badger keyspace.
const badgerKeyPrefix = "cache:"

// BadgerStore keeps records in an embedded badger database.
type BadgerStore struct {
	db    *badger.DB
	codec Codec
}

// OpenBadgerStore opens (or creates) a badger database at path.
//
//	store, err := cache.OpenBadgerStore("/data/cache", cache.JSONCodec{})
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
func OpenBadgerStore(path string, codec Codec) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	opts.ValueLogFileSize = 16 << 20
	opts.SyncWrites = true
	return openBadger(opts, codec)
}

func openBadger(opts badger.Options, codec Codec) (*BadgerStore, error) {
	if codec == nil {
		codec = JSONCodec{}
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger cache: %w", err)
	}
	return &BadgerStore{db: db, codec: codec}, nil
}

// Put implements Store.
func (s *BadgerStore) Put(_ context.Context, key string, data []byte) (Record, error) {
	if key == "" {
		return Record{}, ErrEmptyKey
	}
	rec := Record{Data: cloneBytes(data), CachedAt: now()}
	b, err := s.codec.Encode(rec)
	if err != nil {
		return Record{}, fmt.Errorf("encode cache record %q: %w", key, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(badgerKeyPrefix+key), b)
	})
	if err != nil {
		return Record{}, fmt.Errorf("store cache record %q: %w", key, err)
	}
	return rec, nil
}

// Get implements Store.
func (s *BadgerStore) Get(_ context.Context, key string) (Record, bool) {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(badgerKeyPrefix + key))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			logging.Warn().Err(err).Str("key", key).Msg("Badger cache read failed, treating as miss")
		}
		return Record{}, false
	}
	rec, err := s.codec.Decode(raw)
	if err != nil {
		logging.Warn().Err(err).Str("key", key).Str("codec", s.codec.Name()).Msg("Badger cache record corrupt, treating as miss")
		return Record{}, false
	}
	return rec, true
}

// Ping implements Store.
func (s *BadgerStore) Ping(_ context.Context) error {
	if s.db.IsClosed() {
		return errors.New("badger cache is closed")
	}
	return nil
}

// RunGC rewrites value log files until badger reports nothing left to
// reclaim. It returns how many files were rewritten.
func (s *BadgerStore) RunGC(discardRatio float64) (int, error) {
	rewritten := 0
	for {
		err := s.db.RunValueLogGC(discardRatio)
		if errors.Is(err, badger.ErrNoRewrite) {
			return rewritten, nil
		}
		if err != nil {
			return rewritten, fmt.Errorf("badger value log GC: %w", err)
		}
		rewritten++
	}
}

// Backend implements Store.
func (s *BadgerStore) Backend() string { return BackendBadger }

// Close implements Store.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
