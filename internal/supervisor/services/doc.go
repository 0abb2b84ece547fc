// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

// Package services adapts Devmatch components to suture.Service.
//
// Every wrapper blocks in Serve until its context is canceled and returns
// ctx.Err() on a clean stop, so the supervisor can tell shutdown from a crash.
// String names the service in supervisor logs.
package services
