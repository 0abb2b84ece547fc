// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

/*
Package auth authenticates API callers with HS256 bearer tokens.

Accounts live in an external identity provider. Devmatch only verifies the
token signature and expiry and takes the caller's user ID from the "sub"
claim. Every matching operation that acts on behalf of a user uses that
subject as the requester, so participant checks can never be spoofed through
request bodies.

	jwtManager, err := auth.NewJWTManager(cfg.Security.JWTSecret, cfg.Security.TokenTTL)
	r.Use(auth.NewMiddleware(jwtManager).Authenticate)

Handlers read the caller with UserIDFromContext.
*/
package auth
