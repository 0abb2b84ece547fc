// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

/*
Package validation provides struct validation using go-playground/validator v10.

A single validator instance is built lazily and shared; it caches struct
metadata, so constructing one per request would be wasteful.

# Custom Tags

  - experience_level: BEGINNER, INTERMEDIATE or ADVANCED
  - gender: male, female, non_binary, other
  - region: one of the supported region codes
  - match_status: pending, accepted, rejected

Field names in messages use the struct's json tag, so errors read the same
way as the request body:

	type createMatchRequest struct {
	    UserID string  `json:"user_id" validate:"required,max=128"`
	    Score  float64 `json:"score" validate:"gte=0,lte=1"`
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
	    // errors.Is(verr, models.ErrValidation) == true
	}
*/
package validation
