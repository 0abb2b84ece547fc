// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

/*
Package api is the HTTP boundary of Devmatch.

It exposes the recommendation generator, the match lifecycle manager and the
caller's own profile over a chi router. Every response uses the APIResponse
envelope:

	{"success": true, "data": {...}, "meta": {"request_id": "...", "timestamp": "..."}}
	{"success": false, "error": {"code": "NOT_FOUND", "message": "..."}, "meta": {...}}

# Routes

	GET    /api/v1/health/live        liveness, no auth
	GET    /api/v1/health/ready       readiness (store ping), no auth
	GET    /api/v1/profiles/me        caller's profile
	PUT    /api/v1/profiles/me        onboarding upsert
	PATCH  /api/v1/profiles/me        partial update, including the active flag
	GET    /api/v1/recommendations    ranked candidates for the caller
	POST   /api/v1/matches            propose a match with another user
	GET    /api/v1/matches            caller's matches (404 when there are none)
	GET    /api/v1/matches/{id}       one match the caller participates in
	PATCH  /api/v1/matches/{id}       accept or reject
	DELETE /api/v1/matches/{id}       remove permanently
	GET    /api/v1/ws                 websocket push of match events
	GET    /metrics                   Prometheus

# Error Mapping

Domain errors are matched with errors.Is:

	models.ErrValidation  400 VALIDATION_FAILED
	models.ErrUnauthorized 403 FORBIDDEN
	models.ErrNotFound    404 NOT_FOUND
	models.ErrConflict    409 CONFLICT
	anything else         500 INTERNAL_ERROR (details are logged, never returned)

The requester is always the authenticated subject; user IDs in request bodies
only ever name the other party.
*/
package api
