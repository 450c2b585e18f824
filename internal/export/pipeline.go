// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

// Package export applies the dashboard's filter and sort pipeline to
// provider data and renders the result as delimited text.
package export

import (
	"slices"
	"strings"

	"github.com/tomtom215/rinkstats/internal/models"
)

// Teams returns the standings that match q, ordered by q.SortKey. The input
// slice is not modified.
func Teams(rows []models.TeamStanding, q TeamQuery) []models.TeamStanding {
	search := strings.ToLower(q.Search)
	out := make([]models.TeamStanding, 0, len(rows))
	for _, r := range rows {
		if q.Division != AllDivisions && string(r.Division) != q.Division {
			continue
		}
		if q.Stage != All && string(r.Stage) != q.Stage {
			continue
		}
		if !strings.Contains(strings.ToLower(r.Team), search) {
			continue
		}
		out = append(out, r)
	}
	sortRows(out, TeamColumns, q.SortKey, q.SortDir)
	return out
}

// Players returns the player lines that match q, ordered by q.SortKey. The
// input slice is not modified.
func Players(rows []models.PlayerStat, q PlayerQuery) []models.PlayerStat {
	search := strings.ToLower(q.Search)
	out := make([]models.PlayerStat, 0, len(rows))
	for _, r := range rows {
		if q.Division != AllDivisions && string(r.Division) != q.Division {
			continue
		}
		if q.Position != All && string(r.Position) != q.Position {
			continue
		}
		if q.Team != All && r.Team != q.Team {
			continue
		}
		// False for a NaN threshold, so an unparsable minGp keeps nothing.
		if !(float64(r.GamesPlayed) >= q.MinGP) {
			continue
		}
		if !strings.Contains(strings.ToLower(r.Name+" "+r.Team), search) {
			continue
		}
		out = append(out, r)
	}
	sortRows(out, PlayerColumns, q.SortKey, q.SortDir)
	return out
}

// sortRows sorts in place by the named column. Anything other than "asc"
// sorts descending. Equal rows keep their relative order. An unknown key
// leaves rows unsorted.
func sortRows[T any](rows []T, cols []Column[T], key, dir string) {
	col, ok := findColumn(cols, key)
	if !ok {
		return
	}
	slices.SortStableFunc(rows, func(a, b T) int {
		c := col.Compare(a, b)
		if dir != SortAsc {
			return -c
		}
		return c
	})
}
