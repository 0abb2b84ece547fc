// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

package storage

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/devmatch/internal/models"
)

// PutUser registers or refreshes an account record.
func (s *DB) PutUser(ctx context.Context, u *models.UserRef) error {
	if u == nil || u.ID == "" {
		return models.Validationf("user id is required")
	}
	rec := *u
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	return s.update(ctx, "put user", func(txn *badger.Txn) error {
		var existing models.UserRef
		err := getJSON(txn, userKeyPrefix+rec.ID, &existing)
		if err == nil {
			rec.CreatedAt = existing.CreatedAt
		} else if !errors.Is(err, models.ErrNotFound) {
			return err
		}
		return setJSON(txn, userKeyPrefix+rec.ID, &rec)
	})
}

// GetUser returns the account record for id or models.ErrNotFound.
func (s *DB) GetUser(ctx context.Context, id string) (*models.UserRef, error) {
	var u models.UserRef
	err := s.view(ctx, "get user", func(txn *badger.Txn) error {
		return getJSON(txn, userKeyPrefix+id, &u)
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// DeleteUser removes an account record. Profiles owned by the user are kept
// and will fail population until the account is restored.
func (s *DB) DeleteUser(ctx context.Context, id string) error {
	return s.update(ctx, "delete user", func(txn *badger.Txn) error {
		return deleteKey(txn, userKeyPrefix+id)
	})
}

// lookupUser resolves id inside txn. A missing account yields (nil, nil).
func lookupUser(txn *badger.Txn, id string) (*models.UserRef, error) {
	var u models.UserRef
	err := getJSON(txn, userKeyPrefix+id, &u)
	if errors.Is(err, models.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
