// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

package export

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/tomtom215/rinkstats/internal/validation"
)

// Filter sentinels that disable a filter.
const (
	AllDivisions = "both"
	All          = "all"
)

// Sort directions.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// TeamQuery selects and orders team standings. Division and Stage are
// matched exactly unless they hold the pass-through sentinel.
type TeamQuery struct {
	Division string `query:"division"`
	Stage    string `query:"stage"`
	Search   string `query:"search" validate:"max=100"`
	SortKey  string `query:"sortKey"`
	SortDir  string `query:"sortDir"`
}

// PlayerQuery selects and orders player statistics. MinGP is NaN when the
// parameter was not a number, which keeps no rows.
type PlayerQuery struct {
	Division string  `query:"division"`
	Position string  `query:"position"`
	Team     string  `query:"team" validate:"max=100"`
	MinGP    float64 `query:"minGp"`
	Search   string  `query:"search" validate:"max=100"`
	SortKey  string  `query:"sortKey"`
	SortDir  string  `query:"sortDir"`
}

// DefaultTeamQuery returns the query used when no parameters are given.
func DefaultTeamQuery() TeamQuery {
	return TeamQuery{
		Division: AllDivisions,
		Stage:    All,
		SortKey:  "points",
		SortDir:  SortDesc,
	}
}

// DefaultPlayerQuery returns the query used when no parameters are given.
func DefaultPlayerQuery() PlayerQuery {
	return PlayerQuery{
		Division: AllDivisions,
		Position: All,
		Team:     All,
		SortKey:  "points",
		SortDir:  SortDesc,
	}
}

// ParseTeamQuery reads a TeamQuery from URL parameters, applying defaults
// for missing or empty values. Unknown filter values match nothing and an
// unknown sort key keeps provider order; only oversized input is rejected.
func ParseTeamQuery(v url.Values) (TeamQuery, error) {
	q := DefaultTeamQuery()
	setString(v, "division", &q.Division)
	setString(v, "stage", &q.Stage)
	setString(v, "search", &q.Search)
	setString(v, "sortKey", &q.SortKey)
	setString(v, "sortDir", &q.SortDir)

	if verr := validation.ValidateStruct(&q); verr != nil {
		return q, verr
	}
	return q, nil
}

// ParsePlayerQuery reads a PlayerQuery from URL parameters, applying defaults
// for missing or empty values. See ParseTeamQuery.
func ParsePlayerQuery(v url.Values) (PlayerQuery, error) {
	q := DefaultPlayerQuery()
	setString(v, "division", &q.Division)
	setString(v, "position", &q.Position)
	setString(v, "team", &q.Team)
	setString(v, "search", &q.Search)
	setString(v, "sortKey", &q.SortKey)
	setString(v, "sortDir", &q.SortDir)

	if vals, ok := v["minGp"]; ok && len(vals) > 0 {
		q.MinGP = parseMinGP(vals[0])
	}

	if verr := validation.ValidateStruct(&q); verr != nil {
		return q, verr
	}
	return q, nil
}

// parseMinGP reads a games-played threshold. Blank means 0; anything that
// is not a number yields NaN.
func parseMinGP(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return math.NaN()
	}
	return n
}

func setString(v url.Values, key string, dst *string) {
	if s := v.Get(key); s != "" {
		*dst = s
	}
}
