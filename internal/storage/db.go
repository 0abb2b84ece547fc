// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/devmatch/internal/logging"
	"github.com/tomtom215/devmatch/internal/models"
)

const (
	userKeyPrefix        = "user:"
	profileKeyPrefix     = "profile:"
	profileLangKeyPrefix = "profile_lang:"
	matchKeyPrefix       = "match:"
	matchUserKeyPrefix   = "match_user:"
	matchPairKeyPrefix   = "match_pair:"

	// indexSep separates the parts of a composite index key. User ids and
	// language names may contain ':' so the NUL byte is used instead.
	indexSep = "\x00"
)

// Config controls how the database is opened.
type Config struct {
	// Path is the Badger directory. Ignored when InMemory is set.
	Path string

	// InMemory keeps everything in RAM. Used by tests and the demo mode.
	InMemory bool

	// SyncWrites fsyncs every commit.
	SyncWrites bool
}

// DB is the Badger-backed store. It implements the profile, user and match
// store interfaces consumed by the recommend and match packages.
type DB struct {
	db *badger.DB
}

// Open opens (or creates) the database described by cfg.
func Open(cfg Config) (*DB, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if strings.TrimSpace(cfg.Path) == "" {
			return nil, errors.New("storage: path is required unless in_memory is set")
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts.SyncWrites = cfg.SyncWrites
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}

	logging.Info().
		Str("path", cfg.Path).
		Bool("in_memory", cfg.InMemory).
		Msg("Document store opened")
	return &DB{db: db}, nil
}

// OpenInMemory opens an empty in-memory database.
func OpenInMemory() (*DB, error) {
	return Open(Config{InMemory: true})
}

// Close flushes and closes the database.
func (s *DB) Close() error {
	return s.db.Close()
}

// Ping reports whether the database is usable.
func (s *DB) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.db.IsClosed() {
		return models.StoreError("ping", errors.New("database is closed"))
	}
	return s.db.View(func(*badger.Txn) error { return nil })
}

// RunGC reclaims value log space until Badger reports nothing left to rewrite.
func (s *DB) RunGC() error {
	for {
		err := s.db.RunValueLogGC(0.5)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrGCInMemoryMode) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("run GC: %w", err)
		}
	}
}

// view runs fn in a read transaction after checking ctx.
func (s *DB) view(ctx context.Context, op string, fn func(txn *badger.Txn) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return wrapTxnErr(op, s.db.View(fn))
}

// update runs fn in a read-write transaction after checking ctx.
func (s *DB) update(ctx context.Context, op string, fn func(txn *badger.Txn) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return wrapTxnErr(op, s.db.Update(fn))
}

// wrapTxnErr passes domain errors through and marks everything else as a store failure.
func wrapTxnErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, badger.ErrConflict):
		return fmt.Errorf("%s: concurrent write: %w", op, models.ErrConflict)
	case isDomainErr(err):
		return err
	default:
		return models.StoreError(op, err)
	}
}

func isDomainErr(err error) bool {
	return errors.Is(err, models.ErrNotFound) ||
		errors.Is(err, models.ErrValidation) ||
		errors.Is(err, models.ErrUnauthorized) ||
		errors.Is(err, models.ErrConflict) ||
		errors.Is(err, models.ErrDataIntegrity)
}

func getJSON(txn *badger.Txn, key string, dst interface{}) error {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return models.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, dst)
	})
}

func setJSON(txn *badger.Txn, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return txn.Set([]byte(key), data)
}

func deleteKey(txn *badger.Txn, key string) error {
	if err := txn.Delete([]byte(key)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// scanIndex returns the values stored under every key that starts with prefix.
func scanIndex(txn *badger.Txn, prefix string) ([]string, error) {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(prefix)
	it := txn.NewIterator(opts)
	defer it.Close()

	var ids []string
	for it.Seek(opts.Prefix); it.ValidForPrefix(opts.Prefix); it.Next() {
		err := it.Item().Value(func(val []byte) error {
			ids = append(ids, string(val))
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return ids, nil
}

func indexKey(prefix string, parts ...string) string {
	return prefix + strings.Join(parts, indexSep)
}
