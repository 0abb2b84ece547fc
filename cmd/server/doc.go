// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

/*
Package main is the Devmatch server.

Devmatch recommends compatible developers to each other and tracks the
matches they propose. Profiles and matches live in an embedded Badger store;
match lifecycle events are pushed to both participants over a websocket.

# Process Layout

	RootSupervisor ("devmatch")
	├── DataSupervisor ("data-layer")
	│   ├── StorageGCService
	│   └── ProfileStatsService
	├── MessagingSupervisor ("messaging-layer")
	│   ├── WebSocketHubService
	│   └── events.Forwarder (if EVENTS_ENABLED)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Initialization order:

 1. Configuration (koanf: defaults, config.yaml, environment)
 2. Logging (zerolog)
 3. Storage (Badger)
 4. Scorer and recommendation generator
 5. Event bus, match manager, websocket hub
 6. HTTP router and supervisor tree

# Configuration

See internal/config for the full list. The essentials:

	JWT_SECRET=$(openssl rand -base64 32)
	DATABASE_PATH=/data/devmatch
	HTTP_PORT=8080

# Demo Data

	./devmatch -seed

loads a handful of demo profiles and prints a bearer token for each demo
user, then keeps serving.

# Signals

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains for
SHUTDOWN_TIMEOUT before the store is closed.
*/
package main
