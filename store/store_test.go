package store

import (
	"errors"
	"testing"
)

func seeded(t *testing.T) *UserStore {
	t.Helper()
	s, err := NewSeeded()
	if err != nil {
		t.Fatalf("NewSeeded: %v", err)
	}
	return s
}

func TestSeededStore(t *testing.T) {
	s := seeded(t)
	if s.Count() != 2 {
		t.Fatalf("expected 2 seed users, got %d", s.Count())
	}
	users := s.List("")
	if users[0].Id != 1 || users[0].Username != "admin" || users[0].Role != "admin" {
		t.Fatalf("unexpected first seed user: %+v", users[0])
	}
	if users[1].Id != 2 || users[1].Username != "user" || users[1].Role != "user" {
		t.Fatalf("unexpected second seed user: %+v", users[1])
	}
}

func TestCreateAssignsSequentialIds(t *testing.T) {
	s := seeded(t)
	u, err := s.Create("Charlie", "charlie", "pw", "user")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.Id != 3 {
		t.Fatalf("expected id 3, got %d", u.Id)
	}
	if s.Count() != 3 {
		t.Fatalf("expected 3 users, got %d", s.Count())
	}
}

func TestCreateDuplicateUsername(t *testing.T) {
	s := seeded(t)
	_, err := s.Create("Imposter", "admin", "pw", "user")
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
	if s.Count() != 2 {
		t.Fatalf("conflicting create must not mutate the store, got %d users", s.Count())
	}
}

func TestUpdatePartial(t *testing.T) {
	s := seeded(t)

	u, err := s.Update(2, "", "admin")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if u.Name != "User" {
		t.Fatalf("empty name must keep prior value, got %q", u.Name)
	}
	if u.Role != "admin" {
		t.Fatalf("expected role admin, got %q", u.Role)
	}

	u, err = s.Update(2, "Renamed", "")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if u.Name != "Renamed" || u.Role != "admin" {
		t.Fatalf("unexpected record after partial update: %+v", u)
	}
	if u.Username != "user" {
		t.Fatalf("username must be immutable, got %q", u.Username)
	}
}

func TestUpdateNotFound(t *testing.T) {
	s := seeded(t)
	if _, err := s.Update(99, "Nobody", ""); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDeleteIdempotent(t *testing.T) {
	s := seeded(t)
	s.Delete(99)
	if s.Count() != 2 {
		t.Fatalf("deleting an absent id must not change the store, got %d users", s.Count())
	}
	s.Delete(2)
	s.Delete(2)
	if s.Count() != 1 {
		t.Fatalf("expected 1 user after delete, got %d", s.Count())
	}
}

// Deleting a user frees its username for re-creation, and the new id is
// len+1 rather than max+1. Both are long-standing documented behavior.
func TestDeleteThenRecreateUsername(t *testing.T) {
	s := seeded(t)
	s.Delete(1)

	u, err := s.Create("Second Admin", "admin", "pw", "admin")
	if err != nil {
		t.Fatalf("Create after delete: %v", err)
	}
	if u.Id != 2 {
		t.Fatalf("expected reassigned id 2, got %d", u.Id)
	}
}

func TestListRoleFilter(t *testing.T) {
	s := seeded(t)
	admins := s.List("admin")
	if len(admins) != 1 || admins[0].Role != "admin" {
		t.Fatalf("unexpected admin filter result: %+v", admins)
	}
	if got := s.List("nosuchrole"); len(got) != 0 {
		t.Fatalf("expected empty result for unknown role, got %+v", got)
	}
}

func TestVerifyCredentials(t *testing.T) {
	s := seeded(t)

	u, err := s.VerifyCredentials("admin", "admin123")
	if err != nil {
		t.Fatalf("VerifyCredentials: %v", err)
	}
	if u.Id != 1 || u.Role != "admin" {
		t.Fatalf("unexpected record: %+v", u)
	}

	if _, err := s.VerifyCredentials("admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := s.VerifyCredentials("ghost", "admin123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown username, got %v", err)
	}
}

func TestProfiles(t *testing.T) {
	s := seeded(t)
	profiles := s.Profiles()
	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(profiles))
	}
	if profiles[0].Name != "Admin" || profiles[0].Role != "admin" {
		t.Fatalf("unexpected profile: %+v", profiles[0])
	}
}
