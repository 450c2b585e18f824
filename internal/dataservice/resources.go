// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

package dataservice

import (
	"context"

	"github.com/tomtom215/rinkstats/internal/models"
)

// Teams loads team standings.
func (s *Service) Teams(ctx context.Context) (*models.Envelope[[]models.TeamStanding], error) {
	return Load(ctx, s, KeyTeams, s.provider.FetchTeams)
}

// Players loads player statistics.
func (s *Service) Players(ctx context.Context) (*models.Envelope[[]models.PlayerStat], error) {
	return Load(ctx, s, KeyPlayers, s.provider.FetchPlayers)
}

// Games loads all games.
func (s *Service) Games(ctx context.Context) (*models.Envelope[[]models.Game], error) {
	return Load(ctx, s, KeyGames, s.provider.FetchGames)
}

// Game loads all games and narrows the envelope to the one with id. The
// envelope keeps the staleness of the underlying games load.
func (s *Service) Game(ctx context.Context, id string) (*models.Envelope[models.Game], error) {
	env, err := s.Games(ctx)
	if err != nil {
		return nil, err
	}
	for _, g := range env.Data {
		if g.ID == id {
			return models.Narrow(env, g), nil
		}
	}
	return nil, ErrGameNotFound
}
