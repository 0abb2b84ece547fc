// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

// Package matching turns two developer profiles into a compatibility score.
//
// Scoring is split into two pure steps:
//
//  1. ExtractFeatures compares profile A (the requester) with profile B (the
//     candidate) and produces a six-element FeatureVector, each value in [0,1].
//  2. Scorer.Score collapses the vector into a weighted average using an
//     immutable Weights value fixed at construction.
//
// # Feature Vector
//
//	index  name                  method
//	0      skill overlap         Jaccard(A.languages, B.languages)
//	1      level similarity      1 - |ordA - ordB| / 2, 0.5 if either level is missing
//	2      preferred language    1 if any of A's languages is in B's preferred list
//	3      goals similarity      token overlap of onboarding goals
//	4      personality           token overlap of onboarding personality
//	5      project type          token overlap of onboarding project type
//
// Dimension 2 is directional: it asks whether A satisfies B's preference, so
// ExtractFeatures(a, b) and ExtractFeatures(b, a) can differ. Use
// ExtractFeaturesBidirectional when both directions are wanted.
//
// # Token Overlap
//
// Text is lower-cased and split on runs of characters outside [A-Za-z0-9_].
// Each side becomes a set of unique tokens and the similarity is
// |A ∩ B| / max(|A|, |B|). Missing or token-free text scores 0.
//
// Both functions are safe for concurrent use.
package matching
