// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

package cache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tomtom215/rinkstats/internal/logging"
)

// FileStore keeps each record in <dir>/<key>.json as
// {"data": <payload>, "cachedAt": <RFC3339 timestamp>}.
//
// Writes go to a temporary file in the same directory which is synced and
// then renamed over the target, so a concurrent Get sees either the previous
// record or the new one in full.
type FileStore struct {
	dir   string
	codec JSONCodec
}

// NewFileStore creates dir if needed and returns a store rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve cache dir %q: %w", dir, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir %q: %w", abs, err)
	}
	return &FileStore{dir: abs}, nil
}

// Dir returns the absolute cache directory.
func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Put implements Store.
func (s *FileStore) Put(_ context.Context, key string, data []byte) (Record, error) {
	if err := validateKey(key); err != nil {
		return Record{}, err
	}

	rec := Record{Data: cloneBytes(data), CachedAt: now()}
	b, err := s.codec.Encode(rec)
	if err != nil {
		return Record{}, fmt.Errorf("encode cache record %q: %w", key, err)
	}

	// The directory may have been removed since the store was opened.
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return Record{}, fmt.Errorf("create cache dir: %w", err)
	}
	if err := writeFileAtomic(s.dir, s.path(key), b); err != nil {
		return Record{}, fmt.Errorf("write cache record %q: %w", key, err)
	}
	return rec, nil
}

// Get implements Store.
func (s *FileStore) Get(_ context.Context, key string) (Record, bool) {
	if validateKey(key) != nil {
		return Record{}, false
	}
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logging.Warn().Err(err).Str("key", key).Msg("Cache file unreadable, treating as miss")
		}
		return Record{}, false
	}
	rec, err := s.codec.Decode(b)
	if err != nil {
		logging.Warn().Err(err).Str("key", key).Msg("Cache file corrupt, treating as miss")
		return Record{}, false
	}
	return rec, true
}

// Ping checks that the cache directory exists and is a directory.
func (s *FileStore) Ping(_ context.Context) error {
	fi, err := os.Stat(s.dir)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return fmt.Errorf("cache path %s is not a directory", s.dir)
	}
	return nil
}

// Backend implements Store.
func (s *FileStore) Backend() string { return BackendFile }

// Close implements Store. FileStore holds no open handles.
func (s *FileStore) Close() error { return nil }

func writeFileAtomic(dir, target string, b []byte) (err error) {
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(b); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), target)
}
