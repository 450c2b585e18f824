// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

// Package logging provides zerolog-based structured logging for Rinkstats.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("resource", "teams").Msg("Loaded")
//	logging.Warn().Err(err).Int("attempt", 2).Msg("Fetch failed, retrying")
//
// # Configuration
//
//	LOG_LEVEL   - trace, debug, info, warn, error; any case (default: INFO)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// # Request-Scoped Logging
//
// The request ID middleware stores request_id and correlation_id in the
// request context. Ctx returns a logger carrying both:
//
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("Serving stale data")
//
// # slog Adapter
//
// suture's event hook (via sutureslog) logs through *slog.Logger.
// NewSlogLogger returns one backed by the global zerolog logger.
//
// # Sanitization
//
// EscapeControl escapes control characters in values taken from requests.
// MaskSecret and RedactURL keep credentials out of startup logs.
//
// # Testing
//
//	var buf bytes.Buffer
//	logger := logging.NewTestLogger(&buf)
//	logger.Info().Msg("test message")
//
// All exported functions are safe for concurrent use.
package logging
