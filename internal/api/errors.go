// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/rinkstats/internal/dataservice"
	"github.com/tomtom215/rinkstats/internal/logging"
	"github.com/tomtom215/rinkstats/internal/validation"
)

// Response messages with fixed wording.
const (
	msgGameNotFound     = "Game not found"
	msgNotFound         = "Not found"
	msgMethodNotAllowed = "Method not allowed"
	msgTooManyRequests  = "Too many requests"
	msgUnhandled        = "Unhandled error"
)

// errRouteNotFound is returned for unknown /api paths.
var errRouteNotFound = errors.New("route not found")

// handlerFunc is an HTTP handler that reports failure by returning an error.
// It must not have written a response when it returns a non-nil error.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// handle adapts a handlerFunc to http.HandlerFunc, routing returned errors
// through writeError.
func handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			writeError(w, r, err)
		}
	}
}

// writeError is the single place where handler errors become responses.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := classifyError(err)

	log := logging.Ctx(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).
			Str("method", r.Method).
			Str("path", logging.EscapeControl(r.URL.Path)).
			Msg("Request failed")
	} else {
		log.Debug().Err(err).
			Int("status", status).
			Str("path", logging.EscapeControl(r.URL.Path)).
			Msg("Request rejected")
	}

	respondError(w, status, message)
}

func classifyError(err error) (int, string) {
	var verr *validation.RequestValidationError
	switch {
	case errors.Is(err, dataservice.ErrGameNotFound):
		return http.StatusNotFound, msgGameNotFound
	case errors.Is(err, errRouteNotFound):
		return http.StatusNotFound, msgNotFound
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Error()
	}

	msg := err.Error()
	if msg == "" {
		msg = msgUnhandled
	}
	return http.StatusInternalServerError, msg
}

func notFound(http.ResponseWriter, *http.Request) error {
	return errRouteNotFound
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	respondError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
}
