// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

// Package events carries match lifecycle events from the match manager to
// push delivery.
//
// The Bus publishes JSON events onto an in-process Watermill GoChannel topic
// behind a gobreaker circuit breaker. A Forwarder subscribes to the topic
// under the supervisor tree and hands each decoded Event to a delivery
// function, which in production sends it to the participants' WebSocket
// connections.
//
// Publishing is fire-and-forget from the caller's point of view: the match
// manager logs publish failures but never fails a committed mutation because
// an event could not be delivered.
package events
