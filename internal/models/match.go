// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

package models

import "time"

// Match is a proposed pairing between two developers.
// UserA and UserB are always different users.
type Match struct {
	ID          string      `json:"id"`
	UserA       string      `json:"user_a"`
	UserB       string      `json:"user_b"`
	Status      MatchStatus `json:"status"`
	Score       float64     `json:"score"`
	InitiatedBy string      `json:"initiated_by"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// HasUser reports whether userID is one of the two participants.
func (m *Match) HasUser(userID string) bool {
	return userID != "" && (m.UserA == userID || m.UserB == userID)
}

// Other returns the participant that is not userID, or "" if userID is not a participant.
func (m *Match) Other(userID string) string {
	switch userID {
	case m.UserA:
		return m.UserB
	case m.UserB:
		return m.UserA
	default:
		return ""
	}
}

// PairKey returns an order-independent key for the two participants.
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "|" + b
}
