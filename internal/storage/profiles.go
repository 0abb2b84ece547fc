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
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/devmatch/internal/models"
)

// GetProfile returns the profile owned by userID with its User populated, or
// models.ErrNotFound. User stays nil if the account record is missing.
func (s *DB) GetProfile(ctx context.Context, userID string) (*models.MatchProfile, error) {
	var p *models.MatchProfile
	err := s.view(ctx, "get profile", func(txn *badger.Txn) error {
		var err error
		p, err = loadProfile(txn, userID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", userID, err)
	}
	return p, nil
}

// ListActiveProfiles returns every active profile except excludeUserID's,
// ordered by user id. Owners are populated; unresolved owners are returned
// with a nil User so the caller can decide how to treat them.
func (s *DB) ListActiveProfiles(ctx context.Context, excludeUserID string) ([]*models.MatchProfile, error) {
	var out []*models.MatchProfile
	err := s.view(ctx, "list active profiles", func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(profileKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(opts.Prefix); it.ValidForPrefix(opts.Prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var p models.MatchProfile
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &p)
			}); err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			if !p.Active || p.UserID == excludeUserID {
				continue
			}
			u, err := lookupUser(txn, p.UserID)
			if err != nil {
				return err
			}
			p.User = u
			out = append(out, &p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListActiveProfilesByLanguage is ListActiveProfiles restricted to owners who
// list at least one of languages. It reads the language index instead of
// scanning every profile.
func (s *DB) ListActiveProfilesByLanguage(ctx context.Context, excludeUserID string, languages []string) ([]*models.MatchProfile, error) {
	var out []*models.MatchProfile
	err := s.view(ctx, "list profiles by language", func(txn *badger.Txn) error {
		seen := make(map[string]struct{})
		for _, lang := range languages {
			ids, err := scanIndex(txn, indexKey(profileLangKeyPrefix, lang, ""))
			if err != nil {
				return err
			}
			for _, id := range ids {
				if _, dup := seen[id]; dup || id == excludeUserID {
					continue
				}
				seen[id] = struct{}{}
				p, err := loadProfile(txn, id)
				if errors.Is(err, models.ErrNotFound) {
					continue
				}
				if err != nil {
					return err
				}
				if p.Active {
					out = append(out, p)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

// SaveProfile creates or replaces userID's profile. CreatedAt is preserved
// across replacements. The returned profile is populated.
func (s *DB) SaveProfile(ctx context.Context, p *models.MatchProfile) (*models.MatchProfile, error) {
	if p == nil || p.UserID == "" {
		return nil, models.Validationf("profile user id is required")
	}
	saved := p.Clone()
	err := s.update(ctx, "save profile", func(txn *badger.Txn) error {
		prev, err := loadProfile(txn, saved.UserID)
		switch {
		case err == nil:
			saved.CreatedAt = prev.CreatedAt
		case errors.Is(err, models.ErrNotFound):
			prev = nil
			if saved.CreatedAt.IsZero() {
				saved.CreatedAt = time.Now().UTC()
			}
		default:
			return err
		}
		saved.UpdatedAt = time.Now().UTC()
		if err := writeProfile(txn, prev, saved); err != nil {
			return err
		}
		saved.User, err = lookupUser(txn, saved.UserID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// UpdateProfile loads userID's profile, applies mutate and writes it back in
// one transaction. Errors from mutate abort the update unchanged.
func (s *DB) UpdateProfile(ctx context.Context, userID string, mutate func(*models.MatchProfile) error) (*models.MatchProfile, error) {
	var updated *models.MatchProfile
	err := s.update(ctx, "update profile", func(txn *badger.Txn) error {
		prev, err := loadProfile(txn, userID)
		if err != nil {
			return fmt.Errorf("profile %q: %w", userID, err)
		}
		next := prev.Clone()
		if err := mutate(next); err != nil {
			return err
		}
		next.UserID = prev.UserID
		next.CreatedAt = prev.CreatedAt
		next.UpdatedAt = time.Now().UTC()
		if err := writeProfile(txn, prev, next); err != nil {
			return err
		}
		updated = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// CountActiveProfiles returns the number of active profiles.
func (s *DB) CountActiveProfiles(ctx context.Context) (int, error) {
	profiles, err := s.ListActiveProfiles(ctx, "")
	if err != nil {
		return 0, err
	}
	return len(profiles), nil
}

// loadProfile reads and populates a profile inside txn.
func loadProfile(txn *badger.Txn, userID string) (*models.MatchProfile, error) {
	var p models.MatchProfile
	if err := getJSON(txn, profileKeyPrefix+userID, &p); err != nil {
		return nil, err
	}
	u, err := lookupUser(txn, userID)
	if err != nil {
		return nil, err
	}
	p.User = u
	return &p, nil
}

// writeProfile stores next and moves its language index entries from prev's languages.
func writeProfile(txn *badger.Txn, prev, next *models.MatchProfile) error {
	if prev != nil {
		for _, lang := range prev.ProgrammingLanguages {
			if err := deleteKey(txn, indexKey(profileLangKeyPrefix, lang, prev.UserID)); err != nil {
				return err
			}
		}
	}
	doc := next.Clone()
	doc.User = nil
	if err := setJSON(txn, profileKeyPrefix+doc.UserID, doc); err != nil {
		return err
	}
	for _, lang := range doc.ProgrammingLanguages {
		key := indexKey(profileLangKeyPrefix, lang, doc.UserID)
		if err := txn.Set([]byte(key), []byte(doc.UserID)); err != nil {
			return fmt.Errorf("index language %q: %w", lang, err)
		}
	}
	return nil
}
