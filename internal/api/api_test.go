// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/rinkstats/internal/cache"
	"github.com/tomtom215/rinkstats/internal/config"
	"github.com/tomtom215/rinkstats/internal/dataservice"
	"github.com/tomtom215/rinkstats/internal/models"
	"github.com/tomtom215/rinkstats/internal/provider"
	"github.com/tomtom215/rinkstats/internal/retry"
)

// flakyProvider serves mock data until failing is set.
type flakyProvider struct {
	*provider.Mock
	failing atomic.Bool
	err     error
}

func newFlakyProvider() *flakyProvider {
	return &flakyProvider{
		Mock: provider.NewMock("testprov"),
		err:  errors.New("upstream unavailable"),
	}
}

func (p *flakyProvider) FetchTeams(ctx context.Context) ([]models.TeamStanding, error) {
	if p.failing.Load() {
		return nil, p.err
	}
	return p.Mock.FetchTeams(ctx)
}

func (p *flakyProvider) FetchPlayers(ctx context.Context) ([]models.PlayerStat, error) {
	if p.failing.Load() {
		return nil, p.err
	}
	return p.Mock.FetchPlayers(ctx)
}

func (p *flakyProvider) FetchGames(ctx context.Context) ([]models.Game, error) {
	if p.failing.Load() {
		return nil, p.err
	}
	return p.Mock.FetchGames(ctx)
}

// panickyProvider panics on every fetch.
type panickyProvider struct {
	*provider.Mock
}

func (panickyProvider) FetchTeams(context.Context) ([]models.TeamStanding, error) {
	panic("provider exploded")
}

func testConfig() *config.Config {
	return &config.Config{
		Dashboard: config.DashboardConfig{
			RefreshIntervalSeconds: 30,
			TournamentYear:         2026,
			Division:               "both",
			Theme:                  "dark",
		},
		Export: config.ExportConfig{Delimiter: ","},
	}
}

type testEnv struct {
	handler  *Handler
	server   http.Handler
	provider *flakyProvider
	store    cache.Store
}

func newTestEnv(t *testing.T, mutate func(*config.Config)) *testEnv {
	t.Helper()

	store, err := cache.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	cfg := testConfig()
	if mutate != nil {
		mutate(cfg)
	}

	p := newFlakyProvider()
	svc := dataservice.New(store, p, dataservice.Config{
		Retry: retry.Policy{
			MaxRetries: 2,
			Backoff:    time.Millisecond,
			Wait:       func(context.Context, time.Duration) error { return nil },
		},
	})

	h := NewHandler(svc, cfg)
	h.now = func() time.Time { return time.UnixMilli(1700000000000) }

	router := NewRouter(h, NewChiMiddleware(&ChiMiddlewareConfig{
		CORSAllowedOrigins: []string{"*"},
		RateLimitDisabled:  true,
	}), cfg.Server.StaticDir)

	return &testEnv{
		handler:  h,
		server:   router.SetupChi(),
		provider: p,
		store:    store,
	}
}

func (e *testEnv) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	e.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}
