// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

// Package provider defines the upstream source of tournament data.
//
// Every Fetch call returns a freshly allocated collection. Callers may modify
// the result without affecting later calls or other callers.
package provider

import (
	"context"

	"github.com/tomtom215/rinkstats/internal/models"
)

// Provider supplies standings, player statistics and games.
type Provider interface {
	// Name identifies the provider in API envelopes, e.g. "sportradar".
	Name() string

	FetchTeams(ctx context.Context) ([]models.TeamStanding, error)
	FetchPlayers(ctx context.Context) ([]models.PlayerStat, error)
	FetchGames(ctx context.Context) ([]models.Game, error)
}
