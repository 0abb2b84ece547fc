// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

package models

import (
	"errors"
	"testing"
)

func TestCanTransition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from, to MatchStatus
		want     bool
	}{
		{MatchPending, MatchAccepted, true},
		{MatchPending, MatchRejected, true},
		{MatchPending, MatchPending, false},
		{MatchAccepted, MatchRejected, false},
		{MatchAccepted, MatchPending, false},
		{MatchRejected, MatchAccepted, false},
		{MatchPending, MatchStatus("archived"), false},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestMatchStatusTerminal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status   MatchStatus
		terminal bool
		live     bool
	}{
		{MatchPending, false, true},
		{MatchAccepted, true, true},
		{MatchRejected, true, false},
		{MatchStatus("archived"), false, false},
	}
	for _, tt := range tests {
		if got := tt.status.Terminal(); got != tt.terminal {
			t.Errorf("%s.Terminal() = %v, want %v", tt.status, got, tt.terminal)
		}
		if got := tt.status.Live(); got != tt.live {
			t.Errorf("%s.Live() = %v, want %v", tt.status, got, tt.live)
		}
	}
}

func TestExperienceLevelOrdinal(t *testing.T) {
	t.Parallel()

	if o, ok := LevelAdvanced.Ordinal(); !ok || o != 2 {
		t.Errorf("ADVANCED ordinal = %d,%v", o, ok)
	}
	if _, ok := ExperienceLevel("").Ordinal(); ok {
		t.Error("empty level should not have an ordinal")
	}
	if ExperienceLevel("EXPERT").Valid() {
		t.Error("EXPERT is not a defined level")
	}
}

func TestPairKeyIsOrderIndependent(t *testing.T) {
	t.Parallel()

	if PairKey("alice", "bob") != PairKey("bob", "alice") {
		t.Error("pair key must not depend on argument order")
	}
	if PairKey("a", "b") == PairKey("a", "c") {
		t.Error("different pairs must not collide")
	}
}

func TestMatchParticipants(t *testing.T) {
	t.Parallel()

	m := &Match{UserA: "alice", UserB: "bob"}
	if !m.HasUser("alice") || !m.HasUser("bob") || m.HasUser("carol") || m.HasUser("") {
		t.Error("HasUser returned wrong membership")
	}
	if m.Other("alice") != "bob" || m.Other("bob") != "alice" || m.Other("carol") != "" {
		t.Error("Other returned wrong participant")
	}
}

func TestProfileUpdateApply(t *testing.T) {
	t.Parallel()

	p := &MatchProfile{UserID: "u1", Bio: "old", ProgrammingLanguages: []string{"go"}}
	active := true
	bio := "new"
	langs := []string{"rust", "zig"}
	u := &ProfileUpdate{Active: &active, Bio: &bio, ProgrammingLanguages: &langs}
	u.Apply(p)

	if !p.Active || p.Bio != "new" || len(p.ProgrammingLanguages) != 2 {
		t.Errorf("unexpected profile after apply: %+v", p)
	}
	langs[0] = "c"
	if p.ProgrammingLanguages[0] != "rust" {
		t.Error("apply must copy the language slice")
	}
	if p.ProfileImage != "" || p.Age != nil {
		t.Error("nil fields must be left unchanged")
	}
}

func TestProfileCloneIsDeep(t *testing.T) {
	t.Parallel()

	age := 30
	p := &MatchProfile{UserID: "u1", Age: &age, User: &UserRef{ID: "u1"}, ProgrammingLanguages: []string{"go"}}
	c := p.Clone()
	*c.Age = 40
	c.User.Username = "changed"
	c.ProgrammingLanguages[0] = "rust"

	if *p.Age != 30 || p.User.Username != "" || p.ProgrammingLanguages[0] != "go" {
		t.Error("clone shares memory with the original")
	}
}

func TestSpecialisedErrorsMatchParents(t *testing.T) {
	t.Parallel()

	if !errors.Is(ErrNoMatches, ErrNotFound) {
		t.Error("ErrNoMatches should match ErrNotFound")
	}
	if !errors.Is(ErrInvalidTransition, ErrConflict) || !errors.Is(ErrDuplicateMatch, ErrConflict) {
		t.Error("conflict errors should match ErrConflict")
	}
	err := StoreError("get profile", errors.New("disk full"))
	if !errors.Is(err, ErrStore) {
		t.Error("StoreError should match ErrStore")
	}
	if !errors.Is(Validationf("bad %s", "id"), ErrValidation) {
		t.Error("Validationf should match ErrValidation")
	}
}
