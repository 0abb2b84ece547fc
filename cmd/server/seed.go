// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/tomtom215/devmatch/internal/auth"
	"github.com/tomtom215/devmatch/internal/logging"
	"github.com/tomtom215/devmatch/internal/models"
)

// demoStore is the write side of storage.DB the seeder needs.
type demoStore interface {
	PutUser(ctx context.Context, u *models.UserRef) error
	SaveProfile(ctx context.Context, p *models.MatchProfile) (*models.MatchProfile, error)
}

type demoUser struct {
	id       string
	username string
	profile  models.MatchProfile
}

func demoUsers() []demoUser {
	level := func(l models.ExperienceLevel) *models.ExperienceLevel { return &l }
	region := func(r models.Region) *models.Region { return &r }

	return []demoUser{
		{"demo-ada", "ada", models.MatchProfile{
			Active:               true,
			Region:               region(models.RegionEurope),
			ProgrammingLanguages: []string{"Go", "Rust", "SQL"},
			ExperienceLevel:      models.LevelAdvanced,
			Preferences:          models.Preferences{PreferredLanguages: []string{"Go"}, PreferredLevel: level(models.LevelIntermediate)},
			Onboarding: models.OnboardingAnswers{
				Goals:       "ship an open source distributed cache",
				Personality: "calm planner who likes code review",
				ProjectType: "infrastructure tooling",
			},
			Bio: "Storage engines and consensus.",
		}},
		{"demo-linus", "linus", models.MatchProfile{
			Active:               true,
			Region:               region(models.RegionEurope),
			ProgrammingLanguages: []string{"Go", "C"},
			ExperienceLevel:      models.LevelIntermediate,
			Preferences:          models.Preferences{PreferredLanguages: []string{"Rust", "Go"}},
			Onboarding: models.OnboardingAnswers{
				Goals:       "build a distributed key value store",
				Personality: "direct and fast moving",
				ProjectType: "infrastructure",
			},
			Bio: "Kernel hacker learning Go.",
		}},
		{"demo-grace", "grace", models.MatchProfile{
			Active:               true,
			Region:               region(models.RegionNorthAmerica),
			ProgrammingLanguages: []string{"TypeScript", "Go"},
			ExperienceLevel:      models.LevelBeginner,
			Preferences:          models.Preferences{PreferredLevel: level(models.LevelAdvanced)},
			Onboarding: models.OnboardingAnswers{
				Goals:       "find a mentor for a web project",
				Personality: "curious and patient",
				ProjectType: "web application",
			},
			Bio: "Frontend developer moving to the backend.",
		}},
		{"demo-alan", "alan", models.MatchProfile{
			Active:               false,
			ProgrammingLanguages: []string{"Haskell"},
			ExperienceLevel:      models.LevelAdvanced,
			Bio:                  "Inactive demo profile.",
		}},
	}
}

// seedDemoData writes the demo users and profiles and prints a bearer token
// for each. Seeding is idempotent.
func seedDemoData(ctx context.Context, store demoStore, tokens *auth.JWTManager) error {
	return seedTo(ctx, store, tokens, os.Stdout)
}

func seedTo(ctx context.Context, store demoStore, tokens *auth.JWTManager, out io.Writer) error {
	for _, u := range demoUsers() {
		if err := store.PutUser(ctx, &models.UserRef{ID: u.id, Username: u.username}); err != nil {
			return fmt.Errorf("seed user %s: %w", u.id, err)
		}
		profile := u.profile
		profile.UserID = u.id
		if _, err := store.SaveProfile(ctx, &profile); err != nil {
			return fmt.Errorf("seed profile %s: %w", u.id, err)
		}

		token, err := tokens.GenerateToken(u.id, u.username)
		if err != nil {
			return fmt.Errorf("seed token %s: %w", u.id, err)
		}
		fmt.Fprintf(out, "%-8s %s\n", u.username, token)
	}
	logging.Info().Int("users", len(demoUsers())).Msg("Demo data seeded")
	return nil
}
