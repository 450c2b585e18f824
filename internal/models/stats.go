// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

package models

// Division of the tournament.
type Division string

const (
	DivisionMen   Division = "men"
	DivisionWomen Division = "women"
)

// Stage of the tournament a team or game belongs to.
type Stage string

const (
	StageGroup   Stage = "group"
	StagePlayoff Stage = "playoff"
	StageFinal   Stage = "final"
)

// Position of a skater or goaltender.
type Position string

const (
	PositionForward Position = "F"
	PositionDefense Position = "D"
	PositionGoalie  Position = "G"
)

// GameState is the live state of a game.
type GameState string

const (
	GameScheduled GameState = "scheduled"
	GameLive      GameState = "live"
	GameFinal     GameState = "final"
)

// TeamStanding is a team's record within a division and stage.
type TeamStanding struct {
	ID       string   `json:"id"`
	Division Division `json:"division"`
	Stage    Stage    `json:"stage"`
	Team     string   `json:"team"`
	GP       int      `json:"gp"`
	Wins     int      `json:"wins"`
	Losses   int      `json:"losses"`
	Points   int      `json:"points"`
	GoalDiff int      `json:"goalDiff"`
}

// PlayerStat is a player's cumulative tournament statistics.
type PlayerStat struct {
	ID          string   `json:"id"`
	Division    Division `json:"division"`
	Team        string   `json:"team"`
	Name        string   `json:"name"`
	Position    Position `json:"position"`
	GamesPlayed int      `json:"gamesPlayed"`
	Goals       int      `json:"goals"`
	Assists     int      `json:"assists"`
	Points      int      `json:"points"`
	PlusMinus   int      `json:"plusMinus"`
	TOI         string   `json:"toi"`
}

// Game is a single game. Events are human-readable strings in the order they
// happened; providers only ever append to the list.
type Game struct {
	ID            string    `json:"id"`
	Division      Division  `json:"division"`
	Stage         Stage     `json:"stage"`
	HomeTeam      string    `json:"homeTeam"`
	AwayTeam      string    `json:"awayTeam"`
	HomeScore     int       `json:"homeScore"`
	AwayScore     int       `json:"awayScore"`
	Period        int       `json:"period"`
	TimeRemaining string    `json:"timeRemaining"`
	State         GameState `json:"state"`
	Events        []string  `json:"events"`
}

// Clone returns a copy of g that shares no memory with it.
func (g Game) Clone() Game {
	c := g
	if g.Events != nil {
		c.Events = make([]string, len(g.Events))
		copy(c.Events, g.Events)
	}
	return c
}
