// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/devmatch/internal/auth"
	"github.com/tomtom215/devmatch/internal/match"
	"github.com/tomtom215/devmatch/internal/models"
)

// CreateMatch proposes a match between the caller and another user.
func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	ctx := r.Context()
	requester := auth.UserIDFromContext(ctx)

	var req CreateMatchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(rw, r, err)
		return
	}

	created, err := h.matches.Create(ctx, match.CreateRequest{
		UserA:       requester,
		UserB:       req.UserID,
		InitiatedBy: requester,
		Score:       req.Score,
	})
	if err != nil {
		writeDomainError(rw, r, err)
		return
	}
	rw.Created(created)
}

// ListMatches returns every match the caller participates in.
func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	list, err := h.matches.ListForUser(r.Context(), auth.UserIDFromContext(r.Context()))
	if err != nil {
		writeDomainError(rw, r, err)
		return
	}
	rw.SuccessList(list, len(list))
}

// GetMatch returns one match. Only participants may read it.
func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	m, err := h.matches.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(rw, r, err)
		return
	}
	if !m.HasUser(auth.UserIDFromContext(r.Context())) {
		writeDomainError(rw, r, models.ErrUnauthorized)
		return
	}
	rw.Success(m)
}

// UpdateMatchStatus accepts or rejects a pending match.
func (h *Handler) UpdateMatchStatus(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	ctx := r.Context()

	var req UpdateMatchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(rw, r, err)
		return
	}

	updated, err := h.matches.UpdateStatus(ctx, chi.URLParam(r, "id"), auth.UserIDFromContext(ctx), req.Status)
	if err != nil {
		writeDomainError(rw, r, err)
		return
	}
	rw.Success(updated)
}

// DeleteMatch removes a match and returns the deleted record.
func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	ctx := r.Context()

	deleted, err := h.matches.Delete(ctx, chi.URLParam(r, "id"), auth.UserIDFromContext(ctx))
	if err != nil {
		writeDomainError(rw, r, err)
		return
	}
	rw.Success(deleted)
}
