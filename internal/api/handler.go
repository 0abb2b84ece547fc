// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

package api

import (
	"context"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/devmatch/internal/match"
	"github.com/tomtom215/devmatch/internal/models"
	"github.com/tomtom215/devmatch/internal/recommend"
	ws "github.com/tomtom215/devmatch/internal/websocket"
)

// ProfileStore is the profile and account persistence used by the handlers.
type ProfileStore interface {
	GetProfile(ctx context.Context, userID string) (*models.MatchProfile, error)
	SaveProfile(ctx context.Context, p *models.MatchProfile) (*models.MatchProfile, error)
	UpdateProfile(ctx context.Context, userID string, mutate func(*models.MatchProfile) error) (*models.MatchProfile, error)
	PutUser(ctx context.Context, u *models.UserRef) error
	Ping(ctx context.Context) error
}

// Recommender generates ranked recommendations.
type Recommender interface {
	Generate(ctx context.Context, userID string) (*recommend.Result, error)
}

// MatchService is the match lifecycle.
type MatchService interface {
	Create(ctx context.Context, req match.CreateRequest) (*models.Match, error)
	Get(ctx context.Context, id string) (*models.Match, error)
	ListForUser(ctx context.Context, userID string) ([]*models.Match, error)
	UpdateStatus(ctx context.Context, id, requester string, status models.MatchStatus) (*models.Match, error)
	Delete(ctx context.Context, id, requester string) (*models.Match, error)
}

// Handler holds the dependencies of every endpoint.
type Handler struct {
	profiles    ProfileStore
	recommender Recommender
	matches     MatchService
	wsHub       *ws.Hub
	upgrader    websocket.Upgrader
	startTime   time.Time
}

// HandlerDeps are the collaborators passed to NewHandler. WSHub may be nil,
// in which case /ws answers 503.
type HandlerDeps struct {
	Profiles    ProfileStore
	Recommender Recommender
	Matches     MatchService
	WSHub       *ws.Hub

	// AllowedOrigins restricts websocket upgrades. Empty or "*" allows all.
	AllowedOrigins []string
}

// NewHandler creates a Handler.
func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		profiles:    deps.Profiles,
		recommender: deps.Recommender,
		matches:     deps.Matches,
		wsHub:       deps.WSHub,
		upgrader:    newUpgrader(deps.AllowedOrigins),
		startTime:   time.Now(),
	}
}
