// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

package matching

import (
	"math"
	"regexp"
	"strings"

	"github.com/tomtom215/devmatch/internal/models"
)

// Feature vector positions.
const (
	FeatureSkillOverlap = iota
	FeatureLevelSimilarity
	FeaturePreferredLanguage
	FeatureGoals
	FeaturePersonality
	FeatureProjectType

	// FeatureCount is the length of a vector produced by ExtractFeatures.
	FeatureCount
)

// FeatureNames labels each vector position for logs and diagnostics.
var FeatureNames = [FeatureCount]string{
	"skill_overlap",
	"level_similarity",
	"preferred_language",
	"goals",
	"personality",
	"project_type",
}

// missingLevelSimilarity is used whenever either side has no usable level.
const missingLevelSimilarity = 0.5

// FeatureVector is an ordered list of similarity values in [0,1].
// It is computed on demand and never persisted.
type FeatureVector []float64

// SkillOverlap returns the skill overlap dimension, or 0 for a short vector.
func (v FeatureVector) SkillOverlap() float64 {
	if len(v) <= FeatureSkillOverlap {
		return 0
	}
	return v[FeatureSkillOverlap]
}

var nonWord = regexp.MustCompile(`[^A-Za-z0-9_]+`)

// ExtractFeatures compares requester a with candidate b.
// Nil profiles are treated as empty ones.
func ExtractFeatures(a, b *models.MatchProfile) FeatureVector {
	if a == nil {
		a = &models.MatchProfile{}
	}
	if b == nil {
		b = &models.MatchProfile{}
	}

	v := make(FeatureVector, FeatureCount)
	v[FeatureSkillOverlap] = jaccard(a.ProgrammingLanguages, b.ProgrammingLanguages)
	v[FeatureLevelSimilarity] = levelSimilarity(a.ExperienceLevel, b.ExperienceLevel)
	v[FeaturePreferredLanguage] = preferredLanguageMatch(a.ProgrammingLanguages, b.Preferences.PreferredLanguages)
	v[FeatureGoals] = TextSimilarity(a.Onboarding.Goals, b.Onboarding.Goals)
	v[FeaturePersonality] = TextSimilarity(a.Onboarding.Personality, b.Onboarding.Personality)
	v[FeatureProjectType] = TextSimilarity(a.Onboarding.ProjectType, b.Onboarding.ProjectType)
	return v
}

// ExtractFeaturesBidirectional returns the A->B and B->A vectors.
// Only the preferred-language dimension differs between them.
func ExtractFeaturesBidirectional(a, b *models.MatchProfile) (ab, ba FeatureVector) {
	return ExtractFeatures(a, b), ExtractFeatures(b, a)
}

// jaccard returns |A ∩ B| / |A ∪ B| over the unique elements of a and b.
func jaccard(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	setA := toSet(a)
	setB := toSet(b)

	inter := 0
	for s := range setA {
		if _, ok := setB[s]; ok {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func levelSimilarity(a, b models.ExperienceLevel) float64 {
	pa, okA := a.Ordinal()
	pb, okB := b.Ordinal()
	if !okA || !okB {
		return missingLevelSimilarity
	}
	return 1 - math.Abs(float64(pa-pb))/2
}

// preferredLanguageMatch reports whether any of langs satisfies preferred.
func preferredLanguageMatch(langs, preferred []string) float64 {
	if len(langs) == 0 || len(preferred) == 0 {
		return 0
	}
	want := toSet(preferred)
	for _, l := range langs {
		if _, ok := want[l]; ok {
			return 1
		}
	}
	return 0
}

// TextSimilarity returns the token overlap |A ∩ B| / max(|A|, |B|) of two texts.
func TextSimilarity(a, b string) float64 {
	ta := Tokenize(a)
	tb := Tokenize(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	inter := 0
	for tok := range ta {
		if _, ok := tb[tok]; ok {
			inter++
		}
	}
	return float64(inter) / float64(max(len(ta), len(tb)))
}

// Tokenize lower-cases s and splits it on runs of non-word characters,
// returning the set of unique non-empty tokens.
func Tokenize(s string) map[string]struct{} {
	if s == "" {
		return nil
	}
	parts := nonWord.Split(strings.ToLower(s), -1)
	set := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		if p != "" {
			set[p] = struct{}{}
		}
	}
	return set
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, s := range items {
		set[s] = struct{}{}
	}
	return set
}
