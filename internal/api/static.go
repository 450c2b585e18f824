// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

package api

import (
	"net/http"
	"path"
	"path/filepath"
	"strings"
)

// serveStaticOrIndex serves files from the static directory, or index.html
// for paths that are not files so the frontend can route them.
func (router *Router) serveStaticOrIndex(w http.ResponseWriter, r *http.Request) {
	p := r.URL.Path
	setStaticCacheControl(w, p)

	if p != "/" && router.fileExists(p) {
		http.FileServer(http.Dir(router.staticDir)).ServeHTTP(w, r)
		return
	}

	if w.Header().Get("Cache-Control") == "" {
		w.Header().Set("Cache-Control", "public, max-age=300")
	}
	http.ServeFile(w, r, filepath.Join(router.staticDir, "index.html"))
}

func setStaticCacheControl(w http.ResponseWriter, p string) {
	switch ext := strings.ToLower(path.Ext(p)); ext {
	case ".js", ".css":
		// Bundled assets carry content hashes in their names.
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	case ".png", ".svg", ".jpg", ".webp", ".avif", ".ico":
		w.Header().Set("Cache-Control", "public, max-age=604800")
	case ".html", ".json":
		w.Header().Set("Cache-Control", "public, max-age=300")
	}
}

// fileExists reports whether p names a regular file under the static directory.
func (router *Router) fileExists(p string) bool {
	f, err := http.Dir(router.staticDir).Open(p)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false
	}
	return !info.IsDir()
}
