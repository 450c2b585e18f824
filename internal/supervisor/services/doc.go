// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

// Package services adapts Rinkstats components to suture.Service so they can
// run under the supervisor tree.
//
//   - HTTPServerService: the API server, with graceful shutdown
//   - BadgerGCService: periodic value log GC for the badger cache backend
package services
