// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

package api

import (
	"net/http"

	"github.com/tomtom215/devmatch/internal/auth"
)

// Recommendations returns the caller's ranked candidates. An empty list is a
// success, with a message when candidates existed but none qualified.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	result, err := h.recommender.Generate(r.Context(), auth.UserIDFromContext(r.Context()))
	if err != nil {
		writeDomainError(rw, r, err)
		return
	}
	rw.SuccessList(result, len(result.Recommendations))
}
