// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/devmatch/internal/models"
)

// CreateMatch inserts m. When uniquePair is set the insert fails with
// models.ErrDuplicateMatch if a pending or accepted match already exists for
// the same two users in either order.
func (s *DB) CreateMatch(ctx context.Context, m *models.Match, uniquePair bool) error {
	if m == nil || m.ID == "" {
		return models.Validationf("match id is required")
	}
	pair := models.PairKey(m.UserA, m.UserB)
	return s.update(ctx, "create match", func(txn *badger.Txn) error {
		if _, err := txn.Get([]byte(matchKeyPrefix + m.ID)); err == nil {
			return fmt.Errorf("match %q: %w", m.ID, models.ErrConflict)
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		if uniquePair {
			live, err := liveMatchForPair(txn, pair)
			if err != nil {
				return err
			}
			if live != "" {
				return fmt.Errorf("existing match %s: %w", live, models.ErrDuplicateMatch)
			}
		}

		if err := setJSON(txn, matchKeyPrefix+m.ID, m); err != nil {
			return err
		}
		for _, key := range matchIndexKeys(m) {
			if err := txn.Set([]byte(key), []byte(m.ID)); err != nil {
				return fmt.Errorf("index match: %w", err)
			}
		}
		return nil
	})
}

// GetMatch returns the match with id or models.ErrNotFound.
func (s *DB) GetMatch(ctx context.Context, id string) (*models.Match, error) {
	var m models.Match
	err := s.view(ctx, "get match", func(txn *badger.Txn) error {
		return getJSON(txn, matchKeyPrefix+id, &m)
	})
	if err != nil {
		return nil, fmt.Errorf("match %q: %w", id, err)
	}
	return &m, nil
}

// ListMatchesForUser returns every match where userID is a participant,
// newest first. An empty result is not an error at this layer.
func (s *DB) ListMatchesForUser(ctx context.Context, userID string) ([]*models.Match, error) {
	var out []*models.Match
	err := s.view(ctx, "list matches", func(txn *badger.Txn) error {
		ids, err := scanIndex(txn, indexKey(matchUserKeyPrefix, userID, ""))
		if err != nil {
			return err
		}
		for _, id := range ids {
			var m models.Match
			err := getJSON(txn, matchKeyPrefix+id, &m)
			if errors.Is(err, models.ErrNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			out = append(out, &m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// UpdateMatch loads match id, applies mutate and persists the result in one
// transaction. Participants and id cannot be changed by mutate.
func (s *DB) UpdateMatch(ctx context.Context, id string, mutate func(*models.Match) error) (*models.Match, error) {
	var updated models.Match
	err := s.update(ctx, "update match", func(txn *badger.Txn) error {
		var m models.Match
		if err := getJSON(txn, matchKeyPrefix+id, &m); err != nil {
			return fmt.Errorf("match %q: %w", id, err)
		}
		next := m
		if err := mutate(&next); err != nil {
			return err
		}
		next.ID, next.UserA, next.UserB, next.CreatedAt = m.ID, m.UserA, m.UserB, m.CreatedAt
		if err := setJSON(txn, matchKeyPrefix+id, &next); err != nil {
			return err
		}
		updated = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteMatch removes match id and its index entries after check approves it.
// The deleted record is returned.
func (s *DB) DeleteMatch(ctx context.Context, id string, check func(*models.Match) error) (*models.Match, error) {
	var m models.Match
	err := s.update(ctx, "delete match", func(txn *badger.Txn) error {
		if err := getJSON(txn, matchKeyPrefix+id, &m); err != nil {
			return fmt.Errorf("match %q: %w", id, err)
		}
		if check != nil {
			if err := check(&m); err != nil {
				return err
			}
		}
		if err := deleteKey(txn, matchKeyPrefix+id); err != nil {
			return err
		}
		for _, key := range matchIndexKeys(&m) {
			if err := deleteKey(txn, key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// LiveMatchPartners returns the users that share a pending or accepted match with userID.
func (s *DB) LiveMatchPartners(ctx context.Context, userID string) (map[string]struct{}, error) {
	matches, err := s.ListMatchesForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	partners := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		if m.Status.Live() {
			partners[m.Other(userID)] = struct{}{}
		}
	}
	return partners, nil
}

func matchIndexKeys(m *models.Match) []string {
	keys := []string{
		indexKey(matchUserKeyPrefix, m.UserA, m.ID),
		indexKey(matchPairKeyPrefix, models.PairKey(m.UserA, m.UserB), m.ID),
	}
	if m.UserB != m.UserA {
		keys = append(keys, indexKey(matchUserKeyPrefix, m.UserB, m.ID))
	}
	return keys
}

// liveMatchForPair returns the id of a live match for pair, or "".
func liveMatchForPair(txn *badger.Txn, pair string) (string, error) {
	ids, err := scanIndex(txn, indexKey(matchPairKeyPrefix, pair, ""))
	if err != nil {
		return "", err
	}
	for _, id := range ids {
		var m models.Match
		err := getJSON(txn, matchKeyPrefix+id, &m)
		if errors.Is(err, models.ErrNotFound) {
			continue
		}
		if err != nil {
			return "", err
		}
		if m.Status.Live() {
			return id, nil
		}
	}
	return "", nil
}
