// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

package models

// ExperienceLevel is a developer's self-assessed skill tier.
// The zero value means the level was never supplied.
type ExperienceLevel string

const (
	LevelBeginner     ExperienceLevel = "BEGINNER"
	LevelIntermediate ExperienceLevel = "INTERMEDIATE"
	LevelAdvanced     ExperienceLevel = "ADVANCED"
)

// Ordinal maps the level onto 0..2. ok is false for missing or unknown levels.
func (l ExperienceLevel) Ordinal() (ordinal int, ok bool) {
	switch l {
	case LevelBeginner:
		return 0, true
	case LevelIntermediate:
		return 1, true
	case LevelAdvanced:
		return 2, true
	default:
		return 0, false
	}
}

// Valid reports whether l is one of the defined levels.
func (l ExperienceLevel) Valid() bool {
	_, ok := l.Ordinal()
	return ok
}

// Gender is optional on a profile and never used for scoring.
type Gender string

const (
	GenderMale      Gender = "male"
	GenderFemale    Gender = "female"
	GenderNonBinary Gender = "non_binary"
	GenderOther     Gender = "other"
)

// Valid reports whether g is a defined value.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderNonBinary, GenderOther:
		return true
	}
	return false
}

// Region is the coarse geographic area a developer is in.
type Region string

const (
	RegionNorthAmerica Region = "north_america"
	RegionSouthAmerica Region = "south_america"
	RegionEurope       Region = "europe"
	RegionAfrica       Region = "africa"
	RegionAsia         Region = "asia"
	RegionOceania      Region = "oceania"
	RegionMiddleEast   Region = "middle_east"
)

// Valid reports whether r is a defined value.
func (r Region) Valid() bool {
	switch r {
	case RegionNorthAmerica, RegionSouthAmerica, RegionEurope, RegionAfrica,
		RegionAsia, RegionOceania, RegionMiddleEast:
		return true
	}
	return false
}

// MatchStatus is the lifecycle state of a Match.
type MatchStatus string

const (
	MatchPending  MatchStatus = "pending"
	MatchAccepted MatchStatus = "accepted"
	MatchRejected MatchStatus = "rejected"
)

// Valid reports whether s is a defined status.
func (s MatchStatus) Valid() bool {
	switch s {
	case MatchPending, MatchAccepted, MatchRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are allowed out of s.
func (s MatchStatus) Terminal() bool {
	return s == MatchAccepted || s == MatchRejected
}

// Live reports whether a match in state s still occupies its pair.
func (s MatchStatus) Live() bool {
	return s == MatchPending || s == MatchAccepted
}

// CanTransition reports whether the state machine allows from -> to.
// Only pending -> accepted and pending -> rejected are defined.
func CanTransition(from, to MatchStatus) bool {
	if from != MatchPending {
		return false
	}
	return to.Terminal()
}
