// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

/*
Package models defines the data structures shared across Rinkstats.

Domain entities:
  - TeamStanding: one row of the standings table
  - PlayerStat: one row of the player statistics table
  - Game: a game with score, clock and an append-only event log

Response structures:
  - Envelope: the generic wrapper every data endpoint returns, carrying the
    staleness flag, cache timestamp and provider identity
  - ErrorBody: the {"message": ...} body used for 4xx and 5xx responses
  - HealthStatus and ClientConfig for the auxiliary endpoints

JSON field names and their declaration order are part of the HTTP contract:
CSV export headers are derived from them.
*/
package models
