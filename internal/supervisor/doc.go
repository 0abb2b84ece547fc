// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

/*
Package supervisor runs the long-lived Devmatch services under suture v4.

The tree has three layers so a failure in one does not take down the others:

	"devmatch"
	├── LayerData ("data-layer")
	│   ├── StorageGCService
	│   └── ProfileStatsService
	├── LayerMessaging ("messaging-layer")
	│   ├── WebSocketHubService
	│   └── events.Forwarder (if EVENTS_ENABLED)
	└── LayerAPI ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. Supervisor events are
logged through sutureslog, which writes into the zerolog stream via
logging.NewSlogLogger.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddDataService(services.NewStorageGCService(db, 10*time.Minute, logger))
	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, 10*time.Second, logger))
	err = tree.Run(ctx)
*/
package supervisor
