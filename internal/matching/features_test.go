// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

package matching

import (
	"math"
	"testing"

	"github.com/tomtom215/devmatch/internal/models"
)

const epsilon = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < epsilon }

func TestJaccard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b []string
		want float64
	}{
		{"identical", []string{"Go", "Rust"}, []string{"Rust", "Go"}, 1},
		{"partial", []string{"Python", "JS"}, []string{"Python", "Go"}, 1.0 / 3.0},
		{"disjoint", []string{"C"}, []string{"Go"}, 0},
		{"duplicates collapse", []string{"Go", "Go"}, []string{"Go"}, 1},
		{"left empty", nil, []string{"Go"}, 0},
		{"right empty", []string{"Go"}, []string{}, 0},
		{"both empty", nil, nil, 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := jaccard(tt.a, tt.b); !approx(got, tt.want) {
				t.Errorf("jaccard = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevelSimilarity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b models.ExperienceLevel
		want float64
	}{
		{"same beginner", models.LevelBeginner, models.LevelBeginner, 1},
		{"same advanced", models.LevelAdvanced, models.LevelAdvanced, 1},
		{"one step", models.LevelIntermediate, models.LevelAdvanced, 0.5},
		{"two steps", models.LevelBeginner, models.LevelAdvanced, 0},
		{"left missing", "", models.LevelAdvanced, 0.5},
		{"right missing", models.LevelBeginner, "", 0.5},
		{"unknown value", "EXPERT", models.LevelBeginner, 0.5},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := levelSimilarity(tt.a, tt.b); got != tt.want {
				t.Errorf("levelSimilarity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTextSimilarity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"case and punctuation ignored", "Build web-apps!", "build WEB apps", 1},
		{"half overlap", "learn go fast", "learn rust", 1.0 / 3.0},
		{"repeated tokens count once", "go go go", "go", 1},
		{"no overlap", "frontend", "backend", 0},
		{"left missing", "", "anything", 0},
		{"only punctuation", "!!! ...", "anything", 0},
		{"underscore is a word char", "open_source", "open source", 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TextSimilarity(tt.a, tt.b); !approx(got, tt.want) {
				t.Errorf("TextSimilarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPreferredLanguageIsDirectional(t *testing.T) {
	t.Parallel()

	a := &models.MatchProfile{ProgrammingLanguages: []string{"Python"}}
	b := &models.MatchProfile{
		ProgrammingLanguages: []string{"Go"},
		Preferences:          models.Preferences{PreferredLanguages: []string{"Python"}},
	}

	ab, ba := ExtractFeaturesBidirectional(a, b)
	if ab[FeaturePreferredLanguage] != 1 {
		t.Errorf("A satisfies B's preference, got %v", ab[FeaturePreferredLanguage])
	}
	if ba[FeaturePreferredLanguage] != 0 {
		t.Errorf("A has no preferences, got %v", ba[FeaturePreferredLanguage])
	}
}

func TestExtractFeaturesEndToEnd(t *testing.T) {
	t.Parallel()

	a := &models.MatchProfile{
		ProgrammingLanguages: []string{"Python", "JS"},
		ExperienceLevel:      models.LevelIntermediate,
	}
	b := &models.MatchProfile{
		ProgrammingLanguages: []string{"Python", "Go"},
		ExperienceLevel:      models.LevelAdvanced,
		Preferences:          models.Preferences{PreferredLanguages: []string{"Python"}},
	}

	v := ExtractFeatures(a, b)
	if len(v) != FeatureCount {
		t.Fatalf("len(v) = %d, want %d", len(v), FeatureCount)
	}
	want := []float64{1.0 / 3.0, 0.5, 1, 0, 0, 0}
	for i := range want {
		if !approx(v[i], want[i]) {
			t.Errorf("v[%d] (%s) = %v, want %v", i, FeatureNames[i], v[i], want[i])
		}
	}

	score := NewScorer(DefaultWeights()).Score(v)
	if score <= 0 || score >= 1 {
		t.Errorf("score = %v, want strictly between 0 and 1", score)
	}
	if v.SkillOverlap() == 0 {
		t.Error("candidate should survive the zero-overlap filter")
	}
}

func TestExtractFeaturesNoSharedLanguages(t *testing.T) {
	t.Parallel()

	a := &models.MatchProfile{
		ProgrammingLanguages: []string{"C"},
		ExperienceLevel:      models.LevelAdvanced,
		Onboarding:           models.OnboardingAnswers{Goals: "ship a game"},
	}
	b := &models.MatchProfile{
		ProgrammingLanguages: []string{"Go"},
		ExperienceLevel:      models.LevelAdvanced,
		Preferences:          models.Preferences{PreferredLanguages: []string{"C"}},
		Onboarding:           models.OnboardingAnswers{Goals: "ship a game"},
	}

	v := ExtractFeatures(a, b)
	if v.SkillOverlap() != 0 {
		t.Errorf("skill overlap = %v, want 0", v.SkillOverlap())
	}
	if v[FeatureLevelSimilarity] != 1 || v[FeatureGoals] != 1 {
		t.Errorf("other features should still be computed: %v", v)
	}
}

func TestExtractFeaturesNilProfiles(t *testing.T) {
	t.Parallel()

	v := ExtractFeatures(nil, nil)
	want := FeatureVector{0, missingLevelSimilarity, 0, 0, 0, 0}
	for i := range want {
		if v[i] != want[i] {
			t.Errorf("v[%d] = %v, want %v", i, v[i], want[i])
		}
	}
}

func TestShortVectorSkillOverlap(t *testing.T) {
	t.Parallel()

	if (FeatureVector{}).SkillOverlap() != 0 {
		t.Error("empty vector should report zero overlap")
	}
}
