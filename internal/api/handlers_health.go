// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/rinkstats/internal/dataservice"
	"github.com/tomtom215/rinkstats/internal/logging"
	"github.com/tomtom215/rinkstats/internal/models"
)

// readyProbeTimeout bounds the cache store probe in HealthReady.
const readyProbeTimeout = 2 * time.Second

// Health status values.
const (
	statusAlive    = "alive"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthLive handles liveness probe requests.
// Returns 200 OK if the process is alive, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, h.healthStatus(statusAlive))
}

// HealthReady handles readiness probe requests.
// Returns 200 OK when the cache store answers a probe, 503 otherwise.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyProbeTimeout)
	defer cancel()

	if err := h.data.Store().Ping(ctx); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).
			Str("backend", h.data.Store().Backend()).
			Msg("Readiness probe failed")
		respondJSON(w, r, http.StatusServiceUnavailable, h.healthStatus(statusNotReady))
		return
	}

	respondJSON(w, r, http.StatusOK, h.healthStatus(statusReady))
}

func (h *Handler) healthStatus(status string) models.HealthStatus {
	return models.HealthStatus{
		Status:       status,
		CacheBackend: h.data.Store().Backend(),
		Provider:     h.data.ProviderName(),
		Uptime:       time.Since(h.startTime).Seconds(),
	}
}

// ClientConfig returns the dashboard defaults the frontend needs at startup.
func (h *Handler) ClientConfig(w http.ResponseWriter, r *http.Request) {
	d := h.config.Dashboard
	respondJSON(w, r, http.StatusOK, models.ClientConfig{
		TournamentYear:         d.TournamentYear,
		DefaultDivision:        d.Division,
		Theme:                  d.Theme,
		RefreshIntervalSeconds: d.RefreshIntervalSeconds,
		Provider:               h.data.ProviderName(),
		ExportDelimiter:        h.config.Export.Delimiter,
		Resources: []string{
			dataservice.KeyTeams,
			dataservice.KeyPlayers,
			dataservice.KeyGames,
		},
	})
}
