// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/rinkstats/internal/config"
	"github.com/tomtom215/rinkstats/internal/dataservice"
	"github.com/tomtom215/rinkstats/internal/export"
)

// Handler holds the dependencies shared by all API handlers.
//
// Handler files:
//   - handlers.go: data endpoints (teams, players, games)
//   - handlers_export.go: CSV export endpoints
//   - handlers_health.go: probes and client config
//   - handlers_helpers.go: response helpers
type Handler struct {
	data      *dataservice.Service
	config    *config.Config
	archiver  *export.Archiver
	startTime time.Time
	now       func() time.Time
}

// NewHandler creates a Handler. Exports are archived to cfg.Export.Dir when
// cfg.Export.Archive is set.
func NewHandler(data *dataservice.Service, cfg *config.Config) *Handler {
	h := &Handler{
		data:      data,
		config:    cfg,
		startTime: time.Now(),
		now:       time.Now,
	}
	if cfg.Export.Archive {
		h.archiver = export.NewArchiver(cfg.Export.Dir)
	}
	return h
}

// Teams serves the team standings envelope.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) error {
	env, err := h.data.Teams(r.Context())
	if err != nil {
		return err
	}
	respondJSON(w, r, http.StatusOK, env)
	return nil
}

// Players serves the player statistics envelope.
func (h *Handler) Players(w http.ResponseWriter, r *http.Request) error {
	env, err := h.data.Players(r.Context())
	if err != nil {
		return err
	}
	respondJSON(w, r, http.StatusOK, env)
	return nil
}

// Games serves the games envelope.
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) error {
	env, err := h.data.Games(r.Context())
	if err != nil {
		return err
	}
	respondJSON(w, r, http.StatusOK, env)
	return nil
}

// Game serves a single game looked up by the {id} path parameter.
func (h *Handler) Game(w http.ResponseWriter, r *http.Request) error {
	env, err := h.data.Game(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	respondJSON(w, r, http.StatusOK, env)
	return nil
}
