// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/tomtom215/rinkstats/internal/export"
	"github.com/tomtom215/rinkstats/internal/logging"
	"github.com/tomtom215/rinkstats/internal/metrics"
)

// ExportTeams serves filtered, sorted team standings as a CSV attachment.
//
// Query parameters: division, stage, search, sortKey, sortDir.
func (h *Handler) ExportTeams(w http.ResponseWriter, r *http.Request) error {
	q, err := export.ParseTeamQuery(r.URL.Query())
	if err != nil {
		return err
	}

	env, err := h.data.Teams(r.Context())
	if err != nil {
		return err
	}

	return writeExport(h, w, r, "teams", export.Teams(env.Data, q), export.TeamColumns)
}

// ExportPlayers serves filtered, sorted player statistics as a CSV attachment.
//
// Query parameters: division, position, team, minGp, search, sortKey, sortDir.
func (h *Handler) ExportPlayers(w http.ResponseWriter, r *http.Request) error {
	q, err := export.ParsePlayerQuery(r.URL.Query())
	if err != nil {
		return err
	}

	env, err := h.data.Players(r.Context())
	if err != nil {
		return err
	}

	return writeExport(h, w, r, "players", export.Players(env.Data, q), export.PlayerColumns)
}

func writeExport[T any](h *Handler, w http.ResponseWriter, r *http.Request, resource string, rows []T, cols []export.Column[T]) error {
	body, err := export.CSV(rows, cols, h.config.Export.Delimiter)
	if err != nil {
		return fmt.Errorf("build %s export: %w", resource, err)
	}

	filename := export.Filename(resource, h.now())
	log := logging.Ctx(r.Context())

	if h.archiver != nil {
		// Archive failures never fail the download.
		if path, err := h.archiver.Save(filename, body); err != nil {
			log.Warn().Err(err).Str("filename", filename).Msg("Failed to archive export")
		} else {
			log.Debug().Str("path", path).Msg("Export archived")
		}
	}

	metrics.RecordExport(resource, len(rows))
	log.Info().
		Str("resource", resource).
		Int("rows", len(rows)).
		Str("filename", filename).
		Msg("Export generated")

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, body); err != nil {
		log.Debug().Err(err).Msg("Failed to write export body")
	}
	return nil
}
