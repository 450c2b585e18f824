// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

package export

import (
	"fmt"
	"os"
	"path/filepath"
)

// Archiver keeps a copy of every served export on disk.
type Archiver struct {
	dir string
}

// NewArchiver returns an archiver writing into dir. The directory is created
// on first use.
func NewArchiver(dir string) *Archiver {
	return &Archiver{dir: dir}
}

// Save writes content to <dir>/<filename> and returns the path written.
func (a *Archiver) Save(filename, content string) (string, error) {
	if filename != filepath.Base(filename) {
		return "", fmt.Errorf("archive filename %q must not contain a path", filename)
	}
	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(a.dir, filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write export archive: %w", err)
	}
	return path, nil
}
