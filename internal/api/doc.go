// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

/*
Package api serves the Rinkstats HTTP API.

Endpoints:

	GET /api/teams              Envelope of team standings
	GET /api/players            Envelope of player statistics
	GET /api/games              Envelope of games
	GET /api/games/{id}         Envelope of a single game (404 when unknown)
	GET /api/export/teams       filtered, sorted CSV of team standings
	GET /api/export/players     filtered, sorted CSV of player statistics
	GET /api/health/live        liveness probe
	GET /api/health/ready       readiness probe (cache store reachable)
	GET /api/config             dashboard defaults for the frontend
	GET /metrics                Prometheus metrics

Data handlers return an error instead of writing failures themselves. The
error is turned into a JSON {"message": "..."} body by a single error writer:
dataservice.ErrGameNotFound becomes 404, validation errors become 400 and
everything else becomes 500 with the error text as the message.

When a static directory is configured, every other path serves the built
single-page frontend, falling back to index.html for client-side routes.
*/
package api
