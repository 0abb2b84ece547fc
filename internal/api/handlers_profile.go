// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

package api

import (
	"net/http"

	"github.com/tomtom215/devmatch/internal/auth"
	"github.com/tomtom215/devmatch/internal/logging"
	"github.com/tomtom215/devmatch/internal/models"
)

// GetMyProfile returns the caller's profile.
func (h *Handler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	profile, err := h.profiles.GetProfile(r.Context(), auth.UserIDFromContext(r.Context()))
	if err != nil {
		writeDomainError(rw, r, err)
		return
	}
	rw.Success(profile)
}

// PutMyProfile replaces the caller's profile with the submitted fields,
// creating it on first onboarding. Omitted experience level defaults to
// BEGINNER. The caller's account record is refreshed
// from the token so the profile owner always resolves.
func (h *Handler) PutMyProfile(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	ctx := r.Context()

	var req models.ProfileUpdate
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(rw, r, err)
		return
	}

	claims := auth.ClaimsFromContext(ctx)
	if err := h.profiles.PutUser(ctx, &models.UserRef{ID: claims.UserID(), Username: claims.Username}); err != nil {
		writeDomainError(rw, r, err)
		return
	}

	profile := &models.MatchProfile{UserID: claims.UserID(), ExperienceLevel: models.LevelBeginner}
	req.Apply(profile)
	saved, err := h.profiles.SaveProfile(ctx, profile)
	if err != nil {
		writeDomainError(rw, r, err)
		return
	}

	logging.Ctx(ctx).Info().Bool("active", saved.Active).Msg("Profile saved")
	rw.Success(saved)
}

// PatchMyProfile applies a partial update to the caller's existing profile.
func (h *Handler) PatchMyProfile(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	ctx := r.Context()

	var req models.ProfileUpdate
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(rw, r, err)
		return
	}

	updated, err := h.profiles.UpdateProfile(ctx, auth.UserIDFromContext(ctx), func(p *models.MatchProfile) error {
		req.Apply(p)
		return nil
	})
	if err != nil {
		writeDomainError(rw, r, err)
		return
	}
	rw.Success(updated)
}
