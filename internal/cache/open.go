// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

package cache

import (
	"fmt"
	"path/filepath"
)

// Options selects and configures a backend for Open.
type Options struct {
	Enabled  bool
	Backend  string // file, badger, redis
	Codec    string // json, cbor, msgpack; ignored by the file backend
	Dir      string
	RedisURL string
}

// Open builds the configured store, wrapped with metrics. A disabled cache
// yields a NopStore.
func Open(opts Options) (Store, error) {
	if !opts.Enabled || opts.Backend == BackendNone {
		return Instrument(NopStore{}), nil
	}

	codec, err := NewCodec(opts.Codec)
	if err != nil {
		return nil, err
	}

	var s Store
	switch opts.Backend {
	case "", BackendFile:
		if opts.Codec != "" && opts.Codec != CodecJSON {
			return nil, fmt.Errorf("cache backend %q only supports the %q codec", BackendFile, CodecJSON)
		}
		s, err = NewFileStore(opts.Dir)
	case BackendBadger:
		s, err = OpenBadgerStore(filepath.Join(opts.Dir, "badger"), codec)
	case BackendRedis:
		s, err = DialRedis(opts.RedisURL, codec)
	default:
		return nil, fmt.Errorf("unknown cache backend %q", opts.Backend)
	}
	if err != nil {
		return nil, err
	}
	return Instrument(s), nil
}

// BadgerOf returns the badger store behind s, if any.
func BadgerOf(s Store) (*BadgerStore, bool) {
	for {
		switch v := s.(type) {
		case *BadgerStore:
			return v, true
		case interface{ Unwrap() Store }:
			s = v.Unwrap()
		default:
			return nil, false
		}
	}
}
