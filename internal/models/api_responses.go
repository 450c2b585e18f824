// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

package models

import "time"

// Envelope wraps every payload served by the data service.
//
// Stale is false only when Data comes from a fetch that just succeeded. When
// Stale is true, Error holds the reason the live fetch failed and Data and
// CachedAt come from the last successfully cached record.
//
// Example stale response:
//
//	{
//	  "data": [...],
//	  "stale": true,
//	  "cachedAt": "2026-02-14T18:03:11.512Z",
//	  "provider": "sportradar",
//	  "error": "upstream timeout"
//	}
type Envelope[T any] struct {
	Data     T         `json:"data"`
	Stale    bool      `json:"stale"`
	CachedAt time.Time `json:"cachedAt"`
	Provider string    `json:"provider"`
	Error    string    `json:"error,omitempty"`
}

// Narrow returns an envelope with the same metadata around a different payload.
func Narrow[T, U any](e *Envelope[T], data U) *Envelope[U] {
	return &Envelope[U]{
		Data:     data,
		Stale:    e.Stale,
		CachedAt: e.CachedAt,
		Provider: e.Provider,
		Error:    e.Error,
	}
}

// ErrorBody is the JSON body of every error response.
type ErrorBody struct {
	Message string `json:"message"`
}

// HealthStatus is returned by the readiness probe.
type HealthStatus struct {
	Status       string  `json:"status"`
	CacheBackend string  `json:"cacheBackend"`
	Provider     string  `json:"provider"`
	Uptime       float64 `json:"uptimeSeconds"`
}

// ClientConfig carries the dashboard defaults the frontend needs at startup.
type ClientConfig struct {
	TournamentYear         int      `json:"tournamentYear"`
	DefaultDivision        string   `json:"defaultDivision"`
	Theme                  string   `json:"theme"`
	RefreshIntervalSeconds int      `json:"refreshIntervalSeconds"`
	Provider               string   `json:"provider"`
	ExportDelimiter        string   `json:"exportDelimiter"`
	Resources              []string `json:"resources"`
}
