// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

// Package storage is the BadgerDB document store behind profiles, users and
// matches.
//
// Documents are JSON encoded with goccy/go-json. Secondary indexes are plain
// keys whose value is the id of the indexed document:
//
//	user:<user_id>                              -> UserRef
//	profile:<user_id>                           -> MatchProfile (User not stored)
//	profile_lang:<language>\x00<user_id>        -> user_id
//	match:<match_id>                            -> Match
//	match_user:<user_id>\x00<match_id>          -> match_id
//	match_pair:<pair_key>\x00<match_id>         -> match_id
//
// Every document write and its index maintenance happen in one Badger
// transaction. Badger's optimistic concurrency control turns racing writers
// on the same keys into badger.ErrConflict, which is surfaced as
// models.ErrConflict.
package storage
