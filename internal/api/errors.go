// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/devmatch/internal/logging"
	"github.com/tomtom215/devmatch/internal/models"
	"github.com/tomtom215/devmatch/internal/validation"
)

// statusForError maps a domain error to its HTTP status and error code.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest, ErrCodeValidationFailed
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusForbidden, ErrCodeForbidden
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, ErrCodeNotFound
	case errors.Is(err, models.ErrConflict):
		return http.StatusConflict, ErrCodeConflict
	default:
		return http.StatusInternalServerError, ErrCodeInternalError
	}
}

// publicMessages are the client-facing texts for sentinel errors. Wrapped
// context stays in the logs.
var publicMessages = []struct {
	err     error
	message string
}{
	{models.ErrNoMatches, "No matches found"},
	{models.ErrDuplicateMatch, "A pending or accepted match already exists for these users"},
	{models.ErrInvalidTransition, "Match status cannot change from its current state"},
	{models.ErrUnauthorized, "You are not a participant of this match"},
	{models.ErrNotFound, "Resource not found"},
	{models.ErrConflict, "The resource was modified concurrently, retry the request"},
}

// writeDomainError writes err using the standard mapping. Server errors are
// logged with their full chain and returned as a generic message.
func writeDomainError(rw *ResponseWriter, r *http.Request, err error) {
	status, code := statusForError(err)

	if status == http.StatusInternalServerError {
		logging.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("Request failed")
		rw.InternalError("An internal error occurred")
		return
	}

	if status == http.StatusBadRequest {
		var verr *validation.RequestValidationError
		if errors.As(err, &verr) {
			rw.ValidationError(verr.Error(), verr.Details())
			return
		}
		rw.Error(status, code, err.Error())
		return
	}

	logging.Ctx(r.Context()).Debug().Err(err).Int("status", status).Msg("Request rejected")
	for _, pm := range publicMessages {
		if errors.Is(err, pm.err) {
			rw.Error(status, code, pm.message)
			return
		}
	}
	rw.Error(status, code, http.StatusText(status))
}
