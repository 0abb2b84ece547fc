// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

/*
Package websocket pushes match notifications to connected users.

Each connection belongs to one authenticated user and a user may hold several
connections (tabs, devices). The Hub owns the connection set; all mutations
go through its Register and Unregister channels and are applied on the hub
goroutine started by RunWithContext.

Messages are addressed to user IDs rather than broadcast:

	hub.SendToUsers([]string{m.UserA, m.UserB}, websocket.Message{
	    Type: "match.created",
	    Data: m,
	})

Hub.Deliver adapts the hub to the event forwarder, so every match event on
the bus reaches both participants.

# Wire Format

Frames are JSON objects {"type": "...", "data": ...}. Clients may send
{"type": "ping"} and receive {"type": "pong"}. The server also sends
protocol-level pings every 54s and drops clients that miss a pong for 60s.
*/
package websocket
