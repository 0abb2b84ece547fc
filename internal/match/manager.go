// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

package match

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/devmatch/internal/events"
	"github.com/tomtom215/devmatch/internal/logging"
	"github.com/tomtom215/devmatch/internal/metrics"
	"github.com/tomtom215/devmatch/internal/models"
)

// Store is the persistence the manager needs.
type Store interface {
	CreateMatch(ctx context.Context, m *models.Match, uniquePair bool) error
	GetMatch(ctx context.Context, id string) (*models.Match, error)
	ListMatchesForUser(ctx context.Context, userID string) ([]*models.Match, error)
	UpdateMatch(ctx context.Context, id string, mutate func(*models.Match) error) (*models.Match, error)
	DeleteMatch(ctx context.Context, id string, check func(*models.Match) error) (*models.Match, error)
}

// Config controls manager policy.
type Config struct {
	// EnforceUniquePair rejects a new match while a pending or accepted one
	// exists for the same two users.
	EnforceUniquePair bool `json:"enforce_unique_pair"`
}

// DefaultConfig returns the default policy.
func DefaultConfig() Config {
	return Config{EnforceUniquePair: true}
}

// CreateRequest describes a new match.
type CreateRequest struct {
	UserA       string
	UserB       string
	InitiatedBy string
	Score       *float64
	Status      *models.MatchStatus
}

// Manager implements match create, read, list, status update and delete.
type Manager struct {
	store     Store
	publisher events.Publisher
	config    Config
	logger    zerolog.Logger

	now   func() time.Time
	newID func() string
}

// NewManager creates a Manager. A nil publisher disables events.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewManager(store Store, publisher events.Publisher, cfg Config, logger zerolog.Logger) *Manager {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &Manager{
		store:     store,
		publisher: publisher,
		config:    cfg,
		logger:    logger.With().Str("component", "match").Logger(),
		now:       func() time.Time { return time.Now().UTC() },
		newID:     func() string { return uuid.New().String() },
	}
}

// Create validates req and stores a new match. Status defaults to pending
// and score to 0.
func (m *Manager) Create(ctx context.Context, req CreateRequest) (*models.Match, error) {
	match, err := m.create(ctx, req)
	m.record("create", err)
	if err != nil {
		return nil, err
	}
	m.publish(ctx, events.TypeMatchCreated, match.InitiatedBy, match)
	logging.Ctx(ctx).Info().
		Str("match_id", match.ID).
		Str("user_a", match.UserA).
		Str("user_b", match.UserB).
		Msg("Match created")
	return match, nil
}

func (m *Manager) create(ctx context.Context, req CreateRequest) (*models.Match, error) {
	userA := strings.TrimSpace(req.UserA)
	userB := strings.TrimSpace(req.UserB)
	if userA == "" || userB == "" {
		return nil, models.Validationf("both user ids are required")
	}
	if userA == userB {
		return nil, models.Validationf("a user cannot be matched with themselves")
	}

	initiator := strings.TrimSpace(req.InitiatedBy)
	if initiator == "" {
		initiator = userA
	}
	if initiator != userA && initiator != userB {
		return nil, models.Validationf("initiated_by must be one of the participants")
	}

	status := models.MatchPending
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, models.Validationf("unknown status %q", *req.Status)
		}
		status = *req.Status
	}

	score := 0.0
	if req.Score != nil {
		if *req.Score < 0 || *req.Score > 1 {
			return nil, models.Validationf("score must be within [0,1], got %v", *req.Score)
		}
		score = *req.Score
	}

	now := m.now()
	match := &models.Match{
		ID:          m.newID(),
		UserA:       userA,
		UserB:       userB,
		Status:      status,
		Score:       score,
		InitiatedBy: initiator,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := m.store.CreateMatch(ctx, match, m.config.EnforceUniquePair); err != nil {
		return nil, fmt.Errorf("create match: %w", err)
	}
	return match, nil
}

// Get returns the match with id.
func (m *Manager) Get(ctx context.Context, id string) (*models.Match, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	match, err := m.store.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}
	return match, nil
}

// ListForUser returns every match userID participates in. A user with no
// matches gets models.ErrNoMatches rather than an empty list.
func (m *Manager) ListForUser(ctx context.Context, userID string) ([]*models.Match, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, models.Validationf("user id is required")
	}
	list, err := m.store.ListMatchesForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	if len(list) == 0 {
		return nil, models.ErrNoMatches
	}
	return list, nil
}

// UpdateStatus moves match id to status on behalf of requester.
func (m *Manager) UpdateStatus(ctx context.Context, id, requester string, status models.MatchStatus) (*models.Match, error) {
	if err := validateID(id); err != nil {
		m.record("update_status", err)
		return nil, err
	}

	var from models.MatchStatus
	updated, err := m.store.UpdateMatch(ctx, id, func(match *models.Match) error {
		if !match.HasUser(requester) {
			return fmt.Errorf("user %q on match %s: %w", requester, id, models.ErrUnauthorized)
		}
		if !status.Valid() {
			return models.Validationf("unknown status %q", status)
		}
		if !models.CanTransition(match.Status, status) {
			return fmt.Errorf("%s -> %s: %w", match.Status, status, models.ErrInvalidTransition)
		}
		from = match.Status
		match.Status = status
		match.UpdatedAt = m.now()
		return nil
	})
	m.record("update_status", err)
	if err != nil {
		return nil, err
	}

	m.publish(ctx, events.TypeMatchStatusChanged, requester, updated)
	logging.Ctx(ctx).Info().
		Str("match_id", id).
		Str("from", string(from)).
		Str("to", string(updated.Status)).
		Msg("Match status changed")
	return updated, nil
}

// Delete permanently removes match id on behalf of requester and returns the
// deleted record.
func (m *Manager) Delete(ctx context.Context, id, requester string) (*models.Match, error) {
	if err := validateID(id); err != nil {
		m.record("delete", err)
		return nil, err
	}

	deleted, err := m.store.DeleteMatch(ctx, id, func(match *models.Match) error {
		if !match.HasUser(requester) {
			return fmt.Errorf("user %q on match %s: %w", requester, id, models.ErrUnauthorized)
		}
		return nil
	})
	m.record("delete", err)
	if err != nil {
		return nil, err
	}

	m.publish(ctx, events.TypeMatchDeleted, requester, deleted)
	logging.Ctx(ctx).Info().Str("match_id", id).Msg("Match deleted")
	return deleted, nil
}

func (m *Manager) publish(ctx context.Context, typ events.Type, actor string, match *models.Match) {
	if err := m.publisher.Publish(ctx, events.NewMatchEvent(ctx, typ, actor, match)); err != nil {
		m.logger.Warn().Err(err).Str("type", string(typ)).Str("match_id", match.ID).Msg("Event publish failed")
	}
}

func (m *Manager) record(op string, err error) {
	metrics.RecordMatchOperation(op, outcome(err))
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return models.Validationf("malformed match id %q", id)
	}
	return nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, models.ErrValidation):
		return "invalid"
	case errors.Is(err, models.ErrNotFound):
		return "not_found"
	case errors.Is(err, models.ErrUnauthorized):
		return "forbidden"
	case errors.Is(err, models.ErrConflict):
		return "conflict"
	default:
		return "error"
	}
}
