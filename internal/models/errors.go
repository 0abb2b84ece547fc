// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

package models

import (
	"errors"
	"fmt"
)

// Sentinel errors. Check with errors.Is; callers wrap with fmt.Errorf("...: %w").
var (
	// ErrValidation marks malformed input: missing ids, bad enum values.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a missing entity.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized marks a requester who is not a participant of the match.
	ErrUnauthorized = errors.New("not authorized")

	// ErrConflict is the parent of every 409 outcome.
	ErrConflict = errors.New("conflict")

	// ErrDataIntegrity marks stored data that violates a referential invariant,
	// such as a profile whose owning user no longer resolves.
	ErrDataIntegrity = errors.New("data integrity violation")

	// ErrStore marks a failure of the persistence layer.
	ErrStore = errors.New("store failure")
)

// Specialised errors. Each one also matches its parent with errors.Is.
var (
	// ErrNoMatches is returned when a user has no matches at all.
	ErrNoMatches = fmt.Errorf("no matches found: %w", ErrNotFound)

	// ErrInvalidTransition is returned for a status change the state machine forbids.
	ErrInvalidTransition = fmt.Errorf("invalid status transition: %w", ErrConflict)

	// ErrDuplicateMatch is returned when a live match already exists for the pair.
	ErrDuplicateMatch = fmt.Errorf("match already exists for this pair: %w", ErrConflict)
)

// Validationf wraps ErrValidation with a formatted reason.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// StoreError wraps err as a store failure, keeping the original chain.
func StoreError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStore, err)
}
