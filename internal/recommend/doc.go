// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

// Package recommend produces ranked partner recommendations for a developer.
//
// The Generator loads the requester's profile, scores every other active
// profile with the matching package, drops candidates that share no
// programming language, and returns the rest sorted by descending score.
//
// # Outcomes
//
//   - Requester has no profile, or an inactive one: empty list, no error.
//   - Every candidate filtered out: empty list with Message set to
//     "No recommendations found".
//   - A candidate profile whose owning user cannot be resolved: the whole
//     request fails with models.ErrDataIntegrity. Such candidates are never
//     silently skipped.
//   - Store failure: error wrapping models.ErrStore.
//
// # Options
//
// Config.LanguagePrefilter reads candidates from the store's language index
// instead of scanning every active profile. Only profiles that share a
// language with the requester are returned by the index and all others would
// be removed by the zero-overlap filter anyway, so results are identical as
// long as every profile owner resolves. An orphaned profile that shares no
// language is never read on this path, so it does not fail the request.
//
// Config.ExcludeMatched hides users who already share a pending or accepted
// match with the requester. Config.MaxResults truncates the sorted list.
//
// The Generator holds no mutable state and is safe for concurrent use.
package recommend
