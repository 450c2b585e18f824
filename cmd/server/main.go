// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

// Package main is the entry point for the Rinkstats server.
//
// Rinkstats serves Olympic ice hockey standings, player statistics and games
// to a polling dashboard. Every resource is fetched from the configured data
// provider with retries and cached; when the provider fails the last cached
// copy is served and marked stale.
//
// # Startup
//
//  1. Configuration: defaults, optional config.yaml, environment (Koanf v2)
//  2. Logging: zerolog, JSON or console
//  3. Cache store: file, badger or redis
//  4. Provider: mock data source, optionally behind a circuit breaker
//  5. Supervisor tree: HTTP server (api-layer), badger GC (data-layer)
//
// # Signal Handling
//
// SIGINT and SIGTERM stop accepting connections, let in-flight requests
// finish (10s timeout) and close the cache store.
//
// # Example
//
//	export DATA_PROVIDER=sportradar
//	export CACHE_BACKEND=badger
//	export LOG_FORMAT=console
//	./rinkstats
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/rinkstats/internal/api"
	"github.com/tomtom215/rinkstats/internal/config"
	"github.com/tomtom215/rinkstats/internal/logging"
	"github.com/tomtom215/rinkstats/internal/supervisor"
	"github.com/tomtom215/rinkstats/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("env", cfg.App.Env).
		Str("provider", cfg.Provider.Name).
		Str("cache_backend", cfg.Cache.Backend).
		Int("max_retries", cfg.Retry.MaxRetries).
		Dur("retry_backoff", cfg.RetryBackoff()).
		Msg("Starting Rinkstats")

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows any origin in production; set CORS_ORIGINS to restrict it")
	}

	app, err := newApp(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize application")
	}
	defer app.close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	router := api.NewRouter(
		api.NewHandler(app.data, cfg),
		api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(cfg.Security)),
		cfg.Server.StaticDir,
	)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: writeTimeout(cfg),
		IdleTimeout:  60 * time.Second,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	if bs, ok := app.badger(); ok {
		tree.AddDataService(services.NewBadgerGCService(bs, cfg.Cache.BadgerGCInterval))
		logging.Info().Dur("interval", cfg.Cache.BadgerGCInterval).Msg("Badger value log GC scheduled")
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
