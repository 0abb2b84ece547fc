// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

/*
Package middleware provides HTTP infrastructure middleware.

Components:

  - RequestID: propagates or generates X-Request-ID and seeds the logging context
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled by
    chi route pattern so path parameters do not explode label cardinality
  - AccessLog: one structured zerolog line per request, warning on slow requests

The order used by the API router is:

	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.AccessLog(time.Second))

RequestID runs first so every later log line carries the request ID.
*/
package middleware
