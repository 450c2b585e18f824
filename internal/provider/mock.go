// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

package provider

import (
	"context"
	"slices"

	"github.com/tomtom215/rinkstats/internal/models"
)

// Mock serves a fixed tournament snapshot. It never fails unless ctx is
// already done.
type Mock struct {
	name string
}

var _ Provider = (*Mock)(nil)

// NewMock returns a mock that reports itself as name.
func NewMock(name string) *Mock {
	return &Mock{name: name}
}

// Name implements Provider.
func (m *Mock) Name() string { return m.name }

// FetchTeams implements Provider.
func (m *Mock) FetchTeams(ctx context.Context) ([]models.TeamStanding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(mockTeams), nil
}

// FetchPlayers implements Provider.
func (m *Mock) FetchPlayers(ctx context.Context) ([]models.PlayerStat, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(mockPlayers), nil
}

// FetchGames implements Provider. Event lists are copied as well.
func (m *Mock) FetchGames(ctx context.Context) ([]models.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]models.Game, len(mockGames))
	for i, g := range mockGames {
		out[i] = g.Clone()
	}
	return out, nil
}

var mockTeams = []models.TeamStanding{
	{ID: "t1", Division: models.DivisionMen, Stage: models.StageGroup, Team: "Canada", GP: 4, Wins: 4, Losses: 0, Points: 12, GoalDiff: 14},
	{ID: "t2", Division: models.DivisionMen, Stage: models.StageGroup, Team: "Sweden", GP: 4, Wins: 3, Losses: 1, Points: 9, GoalDiff: 8},
	{ID: "t3", Division: models.DivisionWomen, Stage: models.StageGroup, Team: "USA", GP: 4, Wins: 4, Losses: 0, Points: 12, GoalDiff: 16},
	{ID: "t4", Division: models.DivisionWomen, Stage: models.StageGroup, Team: "Finland", GP: 4, Wins: 2, Losses: 2, Points: 6, GoalDiff: 1},
	{ID: "t5", Division: models.DivisionMen, Stage: models.StagePlayoff, Team: "Czechia", GP: 5, Wins: 3, Losses: 2, Points: 8, GoalDiff: 2},
	{ID: "t6", Division: models.DivisionWomen, Stage: models.StagePlayoff, Team: "Canada", GP: 5, Wins: 4, Losses: 1, Points: 11, GoalDiff: 12},
}

var mockPlayers = []models.PlayerStat{
	{ID: "p1", Division: models.DivisionMen, Team: "Canada", Name: "Mason Bell", Position: models.PositionForward, GamesPlayed: 4, Goals: 4, Assists: 5, Points: 9, PlusMinus: 7, TOI: "18:35"},
	{ID: "p2", Division: models.DivisionMen, Team: "Sweden", Name: "Leo Nyberg", Position: models.PositionDefense, GamesPlayed: 4, Goals: 1, Assists: 4, Points: 5, PlusMinus: 4, TOI: "22:01"},
	{ID: "p3", Division: models.DivisionWomen, Team: "USA", Name: "Avery Sloan", Position: models.PositionForward, GamesPlayed: 4, Goals: 6, Assists: 3, Points: 9, PlusMinus: 6, TOI: "19:12"},
	{ID: "p4", Division: models.DivisionWomen, Team: "Finland", Name: "Nora Kallio", Position: models.PositionGoalie, GamesPlayed: 4, Goals: 0, Assists: 0, Points: 0, PlusMinus: 0, TOI: "60:00"},
	{ID: "p5", Division: models.DivisionWomen, Team: "Canada", Name: "Sky Clarke", Position: models.PositionDefense, GamesPlayed: 5, Goals: 2, Assists: 6, Points: 8, PlusMinus: 8, TOI: "24:31"},
}

var mockGames = []models.Game{
	{
		ID: "g1", Division: models.DivisionMen, Stage: models.StageGroup,
		HomeTeam: "Canada", AwayTeam: "Sweden", HomeScore: 3, AwayScore: 2,
		Period: 3, TimeRemaining: "09:41", State: models.GameLive,
		Events: []string{"12:11 P1 GOAL Canada (Bell)", "05:00 P2 GOAL Sweden (Nyberg)", "10:19 P3 GOAL Canada (Santos)"},
	},
	{
		ID: "g2", Division: models.DivisionWomen, Stage: models.StagePlayoff,
		HomeTeam: "USA", AwayTeam: "Canada", HomeScore: 1, AwayScore: 2,
		Period: 2, TimeRemaining: "03:05", State: models.GameLive,
		Events: []string{"18:29 P1 GOAL USA (Sloan)", "16:14 P2 GOAL Canada (Clarke)"},
	},
}
