// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tomtom215/devmatch/internal/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func seedProfile(t *testing.T, db *DB, userID string, active bool, langs ...string) {
	t.Helper()
	ctx := context.Background()
	if err := db.PutUser(ctx, &models.UserRef{ID: userID, Username: userID}); err != nil {
		t.Fatalf("put user: %v", err)
	}
	_, err := db.SaveProfile(ctx, &models.MatchProfile{
		UserID:               userID,
		Active:               active,
		ProgrammingLanguages: langs,
		ExperienceLevel:      models.LevelBeginner,
	})
	if err != nil {
		t.Fatalf("save profile: %v", err)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(Config{}); err == nil {
		t.Error("expected error for empty path without in_memory")
	}
}

func TestOpenOnDisk(t *testing.T) {
	t.Parallel()

	db, err := Open(Config{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	if err := db.Ping(context.Background()); err != nil {
		t.Errorf("ping: %v", err)
	}
	if err := db.RunGC(); err != nil {
		t.Errorf("gc: %v", err)
	}
}

func TestUserRecords(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	ctx := context.Background()

	if _, err := db.GetUser(ctx, "ada"); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("GetUser before put: %v", err)
	}
	if err := db.PutUser(ctx, &models.UserRef{ID: "ada", Username: "ada"}); err != nil {
		t.Fatalf("PutUser: %v", err)
	}
	first, err := db.GetUser(ctx, "ada")
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if first.Username != "ada" || first.CreatedAt.IsZero() {
		t.Errorf("user = %+v", first)
	}

	if err := db.PutUser(ctx, &models.UserRef{ID: "ada", Username: "ada.l"}); err != nil {
		t.Fatalf("PutUser refresh: %v", err)
	}
	second, err := db.GetUser(ctx, "ada")
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if second.Username != "ada.l" || !second.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("refresh = %+v, want username ada.l and created_at %v", second, first.CreatedAt)
	}

	if err := db.PutUser(ctx, &models.UserRef{}); !errors.Is(err, models.ErrValidation) {
		t.Errorf("PutUser without id: %v", err)
	}

	if err := db.DeleteUser(ctx, "ada"); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if _, err := db.GetUser(ctx, "ada"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("GetUser after delete: %v", err)
	}
}

func TestGetProfilePopulatesUser(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	seedProfile(t, db, "alice", true, "Go")

	p, err := db.GetProfile(context.Background(), "alice")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if p.User == nil || p.User.Username != "alice" {
		t.Errorf("expected populated user, got %+v", p.User)
	}
	if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
		t.Error("timestamps should be set on save")
	}
}

func TestGetProfileNotFound(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	_, err := db.GetProfile(context.Background(), "ghost")
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestListActiveProfiles(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	seedProfile(t, db, "alice", true, "Go")
	seedProfile(t, db, "bob", true, "Rust")
	seedProfile(t, db, "carol", false, "Go")

	got, err := db.ListActiveProfiles(context.Background(), "alice")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].UserID != "bob" {
		t.Fatalf("expected only bob, got %d profiles", len(got))
	}
	if got[0].User == nil {
		t.Error("listed profile should be populated")
	}
}

func TestListActiveProfilesUnresolvedOwner(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	ctx := context.Background()
	seedProfile(t, db, "alice", true, "Go")
	seedProfile(t, db, "bob", true, "Go")
	if err := db.DeleteUser(ctx, "bob"); err != nil {
		t.Fatal(err)
	}

	got, err := db.ListActiveProfiles(ctx, "alice")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].User != nil {
		t.Errorf("expected bob with nil user, got %+v", got)
	}
}

func TestListActiveProfilesByLanguage(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	ctx := context.Background()
	seedProfile(t, db, "alice", true, "Go", "Python")
	seedProfile(t, db, "bob", true, "Python")
	seedProfile(t, db, "carol", true, "Rust")
	seedProfile(t, db, "dave", false, "Go")
	seedProfile(t, db, "erin", true, "Go", "Python")

	got, err := db.ListActiveProfilesByLanguage(ctx, "alice", []string{"Go", "Python"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var ids []string
	for _, p := range got {
		ids = append(ids, p.UserID)
	}
	if len(ids) != 2 || ids[0] != "bob" || ids[1] != "erin" {
		t.Errorf("got %v, want [bob erin]", ids)
	}
}

func TestLanguageIndexFollowsUpdates(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	ctx := context.Background()
	seedProfile(t, db, "bob", true, "Go")

	_, err := db.UpdateProfile(ctx, "bob", func(p *models.MatchProfile) error {
		p.ProgrammingLanguages = []string{"Rust"}
		return nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	goUsers, _ := db.ListActiveProfilesByLanguage(ctx, "", []string{"Go"})
	rustUsers, _ := db.ListActiveProfilesByLanguage(ctx, "", []string{"Rust"})
	if len(goUsers) != 0 || len(rustUsers) != 1 {
		t.Errorf("stale index: go=%d rust=%d", len(goUsers), len(rustUsers))
	}
}

func TestSaveProfilePreservesCreatedAt(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	ctx := context.Background()
	seedProfile(t, db, "alice", false)
	first, _ := db.GetProfile(ctx, "alice")

	time.Sleep(5 * time.Millisecond)
	second, err := db.SaveProfile(ctx, &models.MatchProfile{UserID: "alice", Active: true})
	if err != nil {
		t.Fatal(err)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("created_at changed: %v -> %v", first.CreatedAt, second.CreatedAt)
	}
	if !second.UpdatedAt.After(first.UpdatedAt) {
		t.Error("updated_at should move forward")
	}
}

func TestUpdateProfileAbortsOnMutateError(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	ctx := context.Background()
	seedProfile(t, db, "alice", false, "Go")

	_, err := db.UpdateProfile(ctx, "alice", func(p *models.MatchProfile) error {
		p.Active = true
		return models.Validationf("nope")
	})
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	p, _ := db.GetProfile(ctx, "alice")
	if p.Active {
		t.Error("aborted update must not be persisted")
	}

	if _, err := db.UpdateProfile(ctx, "ghost", func(*models.MatchProfile) error { return nil }); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func newMatch(id, a, b string, status models.MatchStatus) *models.Match {
	now := time.Now().UTC()
	return &models.Match{ID: id, UserA: a, UserB: b, Status: status, InitiatedBy: a, CreatedAt: now, UpdatedAt: now}
}

func TestMatchCRUD(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	ctx := context.Background()

	if err := db.CreateMatch(ctx, newMatch("m1", "alice", "bob", models.MatchPending), true); err != nil {
		t.Fatalf("create: %v", err)
	}

	m, err := db.GetMatch(ctx, "m1")
	if err != nil || m.UserB != "bob" {
		t.Fatalf("get: %v %+v", err, m)
	}

	for _, user := range []string{"alice", "bob"} {
		list, err := db.ListMatchesForUser(ctx, user)
		if err != nil || len(list) != 1 {
			t.Errorf("list for %s: %v (%d)", user, err, len(list))
		}
	}

	updated, err := db.UpdateMatch(ctx, "m1", func(m *models.Match) error {
		m.Status = models.MatchAccepted
		m.UserA = "mallory"
		return nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != models.MatchAccepted || updated.UserA != "alice" {
		t.Errorf("unexpected update result: %+v", updated)
	}

	deleted, err := db.DeleteMatch(ctx, "m1", nil)
	if err != nil || deleted.ID != "m1" {
		t.Fatalf("delete: %v", err)
	}
	if _, err := db.GetMatch(ctx, "m1"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("get after delete = %v, want ErrNotFound", err)
	}
	list, _ := db.ListMatchesForUser(ctx, "alice")
	if len(list) != 0 {
		t.Errorf("index entries left behind: %d", len(list))
	}
}

func TestCreateMatchPairUniqueness(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	ctx := context.Background()

	if err := db.CreateMatch(ctx, newMatch("m1", "alice", "bob", models.MatchPending), true); err != nil {
		t.Fatal(err)
	}
	err := db.CreateMatch(ctx, newMatch("m2", "bob", "alice", models.MatchPending), true)
	if !errors.Is(err, models.ErrDuplicateMatch) {
		t.Errorf("reversed pair: err = %v, want ErrDuplicateMatch", err)
	}
	if err := db.CreateMatch(ctx, newMatch("m3", "bob", "alice", models.MatchPending), false); err != nil {
		t.Errorf("uniqueness disabled should allow duplicates: %v", err)
	}
	if err := db.CreateMatch(ctx, newMatch("m1", "carol", "dave", models.MatchPending), false); !errors.Is(err, models.ErrConflict) {
		t.Errorf("reused id: err = %v, want ErrConflict", err)
	}
}

func TestRejectedMatchFreesPair(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	ctx := context.Background()

	if err := db.CreateMatch(ctx, newMatch("m1", "alice", "bob", models.MatchRejected), true); err != nil {
		t.Fatal(err)
	}
	if err := db.CreateMatch(ctx, newMatch("m2", "alice", "bob", models.MatchPending), true); err != nil {
		t.Errorf("rejected match should not block the pair: %v", err)
	}
}

func TestDeleteMatchCheckAborts(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	ctx := context.Background()
	if err := db.CreateMatch(ctx, newMatch("m1", "alice", "bob", models.MatchPending), true); err != nil {
		t.Fatal(err)
	}

	_, err := db.DeleteMatch(ctx, "m1", func(*models.Match) error { return models.ErrUnauthorized })
	if !errors.Is(err, models.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
	if _, err := db.GetMatch(ctx, "m1"); err != nil {
		t.Errorf("match should survive a rejected delete: %v", err)
	}
}

func TestLiveMatchPartners(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	ctx := context.Background()
	_ = db.CreateMatch(ctx, newMatch("m1", "alice", "bob", models.MatchAccepted), false)
	_ = db.CreateMatch(ctx, newMatch("m2", "carol", "alice", models.MatchPending), false)
	_ = db.CreateMatch(ctx, newMatch("m3", "alice", "dave", models.MatchRejected), false)

	partners, err := db.LiveMatchPartners(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if len(partners) != 2 {
		t.Errorf("partners = %v", partners)
	}
	if _, ok := partners["dave"]; ok {
		t.Error("rejected partner should not be live")
	}
}

func TestCanceledContext(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := db.GetProfile(ctx, "alice"); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
