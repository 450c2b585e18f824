// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tomtom215/rinkstats/internal/config"
	"github.com/tomtom215/rinkstats/internal/models"
)

func TestExportTeams(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, nil)

	rec := env.get(t, "/api/export/teams?division=women&sortKey=points&sortDir=asc")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); cd != `attachment; filename="teams-1700000000000.csv"` {
		t.Errorf("Content-Disposition = %q", cd)
	}

	want := strings.Join([]string{
		"id,division,stage,team,gp,wins,losses,points,goalDiff",
		`"t4","women","group","Finland",4,2,2,6,1`,
		`"t6","women","playoff","Canada",5,4,1,11,12`,
		`"t3","women","group","USA",4,4,0,12,16`,
	}, "\n")
	if got := rec.Body.String(); got != want {
		t.Errorf("body =\n%s\nwant\n%s", got, want)
	}
}

func TestExportPlayers(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, func(c *config.Config) { c.Export.Delimiter = ";" })

	rec := env.get(t, "/api/export/players?team=Canada&minGp=5")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	lines := strings.Split(rec.Body.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), rec.Body.String())
	}
	if !strings.HasPrefix(lines[0], "id;division;team;name;position;") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], `"p5";"women";"Canada";"Sky Clarke"`) {
		t.Errorf("row = %q", lines[1])
	}
}

func TestExport_NoRows(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, nil)

	rec := env.get(t, "/api/export/players?search=nobody-matches-this")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}
}

func TestExport_UnknownFilterValues(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, nil)

	tests := []struct {
		path     string
		wantRows int
	}{
		{"/api/export/teams?division=mixed", 0},
		{"/api/export/teams?sortKey=name", 6},
		{"/api/export/teams?sortDir=sideways", 6},
		{"/api/export/players?minGp=abc", 0},
		{"/api/export/players?minGp=-1", 5},
		{"/api/export/players?position=C", 0},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := env.get(t, tt.path)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
				t.Errorf("Content-Type = %q", ct)
			}
			rows := 0
			if body := rec.Body.String(); body != "" {
				rows = strings.Count(body, "\n") // header line has no trailing newline
			}
			if rows != tt.wantRows {
				t.Errorf("rows = %d, want %d", rows, tt.wantRows)
			}
		})
	}
}

func TestExport_OversizedSearch(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, nil)

	rec := env.get(t, "/api/export/players?search="+strings.Repeat("a", 101))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if msg := decode[models.ErrorBody](t, rec).Message; msg != "search must be at most 100 characters" {
		t.Errorf("message = %q", msg)
	}
}

func TestExport_ProviderFailureNoCache(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, nil)
	env.provider.failing.Store(true)

	rec := env.get(t, "/api/export/teams")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestExport_Archive(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	env := newTestEnv(t, func(c *config.Config) {
		c.Export.Archive = true
		c.Export.Dir = dir
	})

	rec := env.get(t, "/api/export/teams")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	b, err := os.ReadFile(filepath.Join(dir, "teams-1700000000000.csv"))
	if err != nil {
		t.Fatalf("archive not written: %v", err)
	}
	if string(b) != rec.Body.String() {
		t.Error("archived export differs from response body")
	}
}
