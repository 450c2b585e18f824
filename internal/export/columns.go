// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

package export

import (
	"cmp"

	"github.com/tomtom215/rinkstats/internal/models"
)

// Column is one exported field of a row type. Name matches the field's JSON
// name, and columns are listed in struct declaration order.
type Column[T any] struct {
	Name    string
	Value   func(T) any
	Compare func(a, b T) int
}

func intCol[T any](name string, get func(T) int) Column[T] {
	return Column[T]{
		Name:    name,
		Value:   func(r T) any { return get(r) },
		Compare: func(a, b T) int { return cmp.Compare(get(a), get(b)) },
	}
}

func strCol[T any, S ~string](name string, get func(T) S) Column[T] {
	return Column[T]{
		Name:    name,
		Value:   func(r T) any { return string(get(r)) },
		Compare: func(a, b T) int { return cmp.Compare(get(a), get(b)) },
	}
}

// TeamColumns are the CSV columns of a team standing.
var TeamColumns = []Column[models.TeamStanding]{
	strCol("id", func(r models.TeamStanding) string { return r.ID }),
	strCol("division", func(r models.TeamStanding) models.Division { return r.Division }),
	strCol("stage", func(r models.TeamStanding) models.Stage { return r.Stage }),
	strCol("team", func(r models.TeamStanding) string { return r.Team }),
	intCol("gp", func(r models.TeamStanding) int { return r.GP }),
	intCol("wins", func(r models.TeamStanding) int { return r.Wins }),
	intCol("losses", func(r models.TeamStanding) int { return r.Losses }),
	intCol("points", func(r models.TeamStanding) int { return r.Points }),
	intCol("goalDiff", func(r models.TeamStanding) int { return r.GoalDiff }),
}

// PlayerColumns are the CSV columns of a player stat line.
var PlayerColumns = []Column[models.PlayerStat]{
	strCol("id", func(r models.PlayerStat) string { return r.ID }),
	strCol("division", func(r models.PlayerStat) models.Division { return r.Division }),
	strCol("team", func(r models.PlayerStat) string { return r.Team }),
	strCol("name", func(r models.PlayerStat) string { return r.Name }),
	strCol("position", func(r models.PlayerStat) models.Position { return r.Position }),
	intCol("gamesPlayed", func(r models.PlayerStat) int { return r.GamesPlayed }),
	intCol("goals", func(r models.PlayerStat) int { return r.Goals }),
	intCol("assists", func(r models.PlayerStat) int { return r.Assists }),
	intCol("points", func(r models.PlayerStat) int { return r.Points }),
	intCol("plusMinus", func(r models.PlayerStat) int { return r.PlusMinus }),
	strCol("toi", func(r models.PlayerStat) string { return r.TOI }),
}

func findColumn[T any](cols []Column[T], name string) (Column[T], bool) {
	for _, c := range cols {
		if c.Name == name {
			return c, true
		}
	}
	return Column[T]{}, false
}
