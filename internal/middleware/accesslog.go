// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/tomtom215/devmatch/internal/logging"
)

// AccessLog logs every request at debug level. Requests slower than
// slowThreshold, and server errors, are logged at warn. A zero threshold
// disables the slow request check.
func AccessLog(slowThreshold time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			elapsed := time.Since(start)
			status := statusOf(ww)

			level := zerolog.DebugLevel
			msg := "HTTP request"
			switch {
			case status >= http.StatusInternalServerError:
				level = zerolog.WarnLevel
				msg = "HTTP request failed"
			case slowThreshold > 0 && elapsed > slowThreshold:
				level = zerolog.WarnLevel
				msg = "Slow HTTP request"
			}

			logging.Ctx(r.Context()).WithLevel(level).
				Str("method", r.Method).
				Str("route", routePattern(r)).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", elapsed).
				Msg(msg)
		})
	}
}
