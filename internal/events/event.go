// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/devmatch/internal/logging"
	"github.com/tomtom215/devmatch/internal/models"
)

// Type names an event.
type Type string

const (
	TypeMatchCreated       Type = "match.created"
	TypeMatchStatusChanged Type = "match.status_changed"
	TypeMatchDeleted       Type = "match.deleted"
)

// MatchTopic is the Watermill topic match events are published on.
const MatchTopic = "devmatch.matches"

// Event is a single match lifecycle notification.
type Event struct {
	ID            string        `json:"id"`
	Type          Type          `json:"type"`
	OccurredAt    time.Time     `json:"occurred_at"`
	CorrelationID string        `json:"correlation_id,omitempty"`
	Actor         string        `json:"actor,omitempty"`
	Recipients    []string      `json:"recipients"`
	Match         *models.Match `json:"match"`
}

// NewMatchEvent builds an event about m performed by actor. Both participants
// are recipients.
func NewMatchEvent(ctx context.Context, typ Type, actor string, m *models.Match) Event {
	e := Event{
		ID:            uuid.New().String(),
		Type:          typ,
		OccurredAt:    time.Now().UTC(),
		CorrelationID: logging.CorrelationIDFromContext(ctx),
		Actor:         actor,
	}
	if m != nil {
		snapshot := *m
		e.Match = &snapshot
		e.Recipients = []string{m.UserA, m.UserB}
	}
	return e
}

// Publisher is the emit-an-event sink used by the match manager.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// NoopPublisher drops every event. Used when events are disabled.
type NoopPublisher struct{}

// Publish implements Publisher.
func (NoopPublisher) Publish(context.Context, Event) error { return nil }
