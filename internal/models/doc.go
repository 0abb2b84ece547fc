// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

/*
Package models defines the domain types shared by the matching engine, the
storage layer and the HTTP API.

Domain Types:

  - MatchProfile: onboarding answers and skills, one per user
  - UserRef: the minimal account record a profile belongs to
  - Match: a proposed pairing between two users with a pending/accepted/rejected status
  - Enumerations: ExperienceLevel, Gender, Region, MatchStatus

Errors:

The sentinel errors in errors.go are the only error identities the rest of
the code base checks for. Lower layers wrap them with fmt.Errorf("...: %w")
and the API layer maps them to HTTP status codes with errors.Is:

	ErrValidation        -> 400
	ErrUnauthorized      -> 403
	ErrNotFound          -> 404
	ErrConflict          -> 409
	anything else        -> 500
*/
package models
