// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

package recommend

import (
	"context"

	"github.com/tomtom215/devmatch/internal/models"
)

// NoRecommendationsMessage is set on a Result when candidates existed in
// principle but none survived filtering.
const NoRecommendationsMessage = "No recommendations found"

// Recommendation is one ranked candidate.
type Recommendation struct {
	// UserID identifies the candidate.
	UserID string `json:"user_id"`

	// Score is the requester-to-candidate compatibility in [0,1].
	Score float64 `json:"score"`

	// Profile is the candidate's full profile with its owner populated.
	Profile *models.MatchProfile `json:"profile"`
}

// Result is the output of Generate.
type Result struct {
	Recommendations []Recommendation `json:"recommendations"`
	Message         string           `json:"message,omitempty"`
}

// ProfileSource is the read side of the profile store the generator needs.
type ProfileSource interface {
	// GetProfile returns the profile for userID or an error matching models.ErrNotFound.
	GetProfile(ctx context.Context, userID string) (*models.MatchProfile, error)

	// ListActiveProfiles returns every active profile except excludeUserID's,
	// each with its owning user populated or nil if unresolved.
	ListActiveProfiles(ctx context.Context, excludeUserID string) ([]*models.MatchProfile, error)
}

// LanguageIndex is implemented by stores that can list active profiles
// sharing at least one language. Used when Config.LanguagePrefilter is set.
type LanguageIndex interface {
	ListActiveProfilesByLanguage(ctx context.Context, excludeUserID string, languages []string) ([]*models.MatchProfile, error)
}

// MatchedUsers is implemented by stores that can report live match partners.
// Used when Config.ExcludeMatched is set.
type MatchedUsers interface {
	LiveMatchPartners(ctx context.Context, userID string) (map[string]struct{}, error)
}
