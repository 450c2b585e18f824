// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/rinkstats/internal/middleware"
)

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// Router sets up HTTP routes using Chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	staticDir     string
}

// NewRouter creates a Router. staticDir holds the built frontend; an empty
// string disables static serving.
func NewRouter(handler *Handler, mw *ChiMiddleware, staticDir string) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: mw,
		staticDir:     staticDir,
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Applied to all routes, in order. CORS must be global to answer preflights.
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chiMiddleware(middleware.Recover))
	r.Use(router.chiMiddleware.CORS())

	r.Route("/api", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(middleware.Compression))

		r.Get("/health/live", router.handler.HealthLive)
		r.Get("/health/ready", router.handler.HealthReady)
		r.Get("/config", router.handler.ClientConfig)

		r.Get("/teams", handle(router.handler.Teams))
		r.Get("/players", handle(router.handler.Players))
		r.Get("/games", handle(router.handler.Games))
		r.Get("/games/{id}", handle(router.handler.Game))

		r.Route("/export", func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitExport())
			r.Get("/teams", handle(router.handler.ExportTeams))
			r.Get("/players", handle(router.handler.ExportPlayers))
		})

		r.NotFound(handle(notFound))
		r.MethodNotAllowed(methodNotAllowed)
	})

	r.Handle("/metrics", promhttp.Handler())

	// Must be last: catches everything not matched above.
	if router.staticDir != "" {
		r.Get("/*", router.serveStaticOrIndex)
	}

	return r
}
