// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/devmatch/internal/models"
	"github.com/tomtom215/devmatch/internal/validation"
)

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 64 * 1024

// CreateMatchRequest is the body of POST /matches. The caller is always
// the initiator and user A.
type CreateMatchRequest struct {
	UserID string   `json:"user_id" validate:"required,max=128"`
	Score  *float64 `json:"score,omitempty" validate:"omitempty,gte=0,lte=1"`
}

// UpdateMatchRequest is the body of PATCH /matches/{id}. The status enum is
// checked by the match manager after the participant check.
type UpdateMatchRequest struct {
	Status models.MatchStatus `json:"status" validate:"required"`
}

// decodeJSON reads a single JSON object into dst and validates it.
// Unknown fields are rejected.
func decodeJSON(r *http.Request, dst interface{}) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return models.Validationf("request body is required")
		case errors.As(err, &maxErr):
			return models.Validationf("request body exceeds %d bytes", maxBodyBytes)
		default:
			return models.Validationf("malformed JSON: %v", err)
		}
	}
	if dec.More() {
		return models.Validationf("request body must contain a single JSON object")
	}
	if err := validation.Validate(dst); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}
	return nil
}
