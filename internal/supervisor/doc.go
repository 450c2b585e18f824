// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

/*
Package supervisor runs the long-lived Rinkstats services under suture v4.

The tree has two layers so a failing maintenance job never takes the API down:

	RootSupervisor ("rinkstats")
	├── DataSupervisor ("data-layer")
	│   └── BadgerGCService (badger cache backend only)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. Supervisor events are
logged through sutureslog, which takes a *slog.Logger; pass
logging.NewSlogLogger() to route them into zerolog.

Example:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	errCh := tree.ServeBackground(ctx)

Service wrappers live in the services subpackage.
*/
package supervisor
