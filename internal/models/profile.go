// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

package models

import "time"

// UserRef is the account a profile belongs to. Accounts are owned by the
// identity provider; the store only keeps enough to populate profiles.
type UserRef struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// Preferences captures what a developer is looking for in a partner.
type Preferences struct {
	PreferredLanguages []string         `json:"preferred_languages,omitempty" validate:"max=50,dive,required,max=64"`
	PreferredLevel     *ExperienceLevel `json:"preferred_level,omitempty" validate:"omitempty,experience_level"`
}

// OnboardingAnswers are the free-text answers collected at onboarding.
// Each one feeds a text-similarity dimension of the feature vector.
type OnboardingAnswers struct {
	Goals       string `json:"goals,omitempty" validate:"max=2000"`
	Personality string `json:"personality,omitempty" validate:"max=2000"`
	ProjectType string `json:"project_type,omitempty" validate:"max=2000"`
}

// MatchProfile is the per-user record the matching engine scores.
// There is at most one profile per UserID; profiles are deactivated, never deleted.
type MatchProfile struct {
	// UserID is the owning account. Unique across profiles.
	UserID string `json:"user_id"`

	// User is populated from the account registry on read and never persisted.
	// A nil User on a listed profile means the account record is gone.
	User *UserRef `json:"user,omitempty"`

	// Active gates visibility to the engine. Defaults to false.
	Active bool `json:"active"`

	Age    *int    `json:"age,omitempty"`
	Gender *Gender `json:"gender,omitempty"`
	Region *Region `json:"region,omitempty"`

	ProgrammingLanguages []string        `json:"programming_languages,omitempty"`
	ExperienceLevel      ExperienceLevel `json:"experience_level,omitempty"`

	Preferences Preferences       `json:"preferences"`
	Onboarding  OnboardingAnswers `json:"onboarding"`

	Bio          string `json:"bio"`
	ProfileImage string `json:"profile_image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy so callers can mutate without touching shared state.
func (p *MatchProfile) Clone() *MatchProfile {
	if p == nil {
		return nil
	}
	c := *p
	if p.User != nil {
		u := *p.User
		c.User = &u
	}
	if p.Age != nil {
		a := *p.Age
		c.Age = &a
	}
	if p.Gender != nil {
		g := *p.Gender
		c.Gender = &g
	}
	if p.Region != nil {
		r := *p.Region
		c.Region = &r
	}
	if p.Preferences.PreferredLevel != nil {
		l := *p.Preferences.PreferredLevel
		c.Preferences.PreferredLevel = &l
	}
	c.ProgrammingLanguages = append([]string(nil), p.ProgrammingLanguages...)
	c.Preferences.PreferredLanguages = append([]string(nil), p.Preferences.PreferredLanguages...)
	return &c
}

// ProfileUpdate is a partial update applied by the profile owner.
// Nil fields are left unchanged.
type ProfileUpdate struct {
	Active               *bool              `json:"active,omitempty"`
	Age                  *int               `json:"age,omitempty" validate:"omitempty,min=13,max=120"`
	Gender               *Gender            `json:"gender,omitempty" validate:"omitempty,gender"`
	Region               *Region            `json:"region,omitempty" validate:"omitempty,region"`
	ProgrammingLanguages *[]string          `json:"programming_languages,omitempty" validate:"omitempty,max=50,dive,required,max=64"`
	ExperienceLevel      *ExperienceLevel   `json:"experience_level,omitempty" validate:"omitempty,experience_level"`
	Preferences          *Preferences       `json:"preferences,omitempty"`
	Onboarding           *OnboardingAnswers `json:"onboarding,omitempty"`
	Bio                  *string            `json:"bio,omitempty" validate:"omitempty,max=2000"`
	ProfileImage         *string            `json:"profile_image,omitempty" validate:"omitempty,max=2048"`
}

// Apply copies the non-nil fields of u onto p.
func (u *ProfileUpdate) Apply(p *MatchProfile) {
	if u.Active != nil {
		p.Active = *u.Active
	}
	if u.Age != nil {
		p.Age = u.Age
	}
	if u.Gender != nil {
		p.Gender = u.Gender
	}
	if u.Region != nil {
		p.Region = u.Region
	}
	if u.ProgrammingLanguages != nil {
		p.ProgrammingLanguages = append([]string(nil), (*u.ProgrammingLanguages)...)
	}
	if u.ExperienceLevel != nil {
		p.ExperienceLevel = *u.ExperienceLevel
	}
	if u.Preferences != nil {
		p.Preferences = *u.Preferences
	}
	if u.Onboarding != nil {
		p.Onboarding = *u.Onboarding
	}
	if u.Bio != nil {
		p.Bio = *u.Bio
	}
	if u.ProfileImage != nil {
		p.ProfileImage = *u.ProfileImage
	}
}
