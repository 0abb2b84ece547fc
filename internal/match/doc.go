// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

// Package match manages the lifecycle of Match records.
//
// State machine:
//
//	pending --accept--> accepted
//	pending --reject--> rejected
//
// accepted and rejected are terminal. Only the two participants may change a
// match's status or delete it. Outcomes are reported with the sentinel errors
// from the models package so the API layer can map them to status codes:
//
//	models.ErrValidation         malformed ids, same user twice, unknown status
//	models.ErrNotFound           unknown match id
//	models.ErrNoMatches          user has no matches at all (wraps ErrNotFound)
//	models.ErrUnauthorized       requester is not a participant
//	models.ErrInvalidTransition  status change out of a terminal state
//	models.ErrDuplicateMatch     a live match already exists for the pair
//
// Every committed create, status change and delete is published as an event.
package match
