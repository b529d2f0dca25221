// Package store implements the in-memory credential store. It is the single
// owner of the user list; all reads and writes go through its accessor
// methods. Store lifetime equals process lifetime.
package store

import (
	"errors"
	"sync"

	"DashboardWebService/auth"
	"DashboardWebService/models"
)

var (
	// ErrUsernameTaken is returned by Create when the username already exists.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrUserNotFound is returned by Update when no user has the given id.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned by VerifyCredentials when the
	// username is unknown or the password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserStore holds user records behind a mutex. net/http dispatches handlers
// concurrently, so id assignment and list mutation must not race.
type UserStore struct {
	mu    sync.Mutex
	users []models.User
}

// New returns an empty store.
func New() *UserStore {
	return &UserStore{}
}

// NewSeeded returns a store pre-populated with the two bootstrap accounts
// (admin/admin123 and user/user123) the service has always started with.
func NewSeeded() (*UserStore, error) {
	s := New()
	seeds := []struct {
		name, username, password, role string
	}{
		{"Admin", "admin", "admin123", "admin"},
		{"User", "user", "user123", "user"},
	}
	for _, seed := range seeds {
		if _, err := s.Create(seed.name, seed.username, seed.password, seed.role); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// List returns the client-safe projection of every user. If roleFilter is
// non-empty only users whose role equals it exactly are returned. The result
// never includes password hashes.
func (s *UserStore) List(roleFilter string) []models.PublicUser {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.PublicUser, 0, len(s.users))
	for _, u := range s.users {
		if roleFilter != "" && u.Role != roleFilter {
			continue
		}
		result = append(result, u.Public())
	}
	return result
}

// Profiles returns the reduced public view (name and role only) of every user.
func (s *UserStore) Profiles() []models.PublicProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.PublicProfile, 0, len(s.users))
	for _, u := range s.users {
		result = append(result, models.PublicProfile{Name: u.Name, Role: u.Role})
	}
	return result
}

// Count returns the number of stored users.
func (s *UserStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// Create adds a new user with a bcrypt-hashed password and returns its
// projection. It fails with ErrUsernameTaken if the username is already
// present (case-sensitive exact match). The new id is len(users)+1 — ids of
// deleted users can be reassigned, which is long-standing documented behavior.
// Uniqueness is enforced at creation time only.
func (s *UserStore) Create(name, username, password, role string) (models.PublicUser, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.PublicUser{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return models.PublicUser{}, ErrUsernameTaken
		}
	}
	user := models.User{
		Id:           len(s.users) + 1,
		Name:         name,
		Username:     username,
		Role:         role,
		PasswordHash: hash,
	}
	s.users = append(s.users, user)
	return user.Public(), nil
}

// Update partially updates the user with the given id. Empty name or role
// arguments keep the prior value; username and password are immutable after
// creation. It fails with ErrUserNotFound if the id is absent.
func (s *UserStore) Update(id int, name, role string) (models.PublicUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Id != id {
			continue
		}
		if name != "" {
			s.users[i].Name = name
		}
		if role != "" {
			s.users[i].Role = role
		}
		return s.users[i].Public(), nil
	}
	return models.PublicUser{}, ErrUserNotFound
}

// Delete removes the user with the given id. It is idempotent: deleting an
// absent id is a no-op.
func (s *UserStore) Delete(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.users[:0]
	for _, u := range s.users {
		if u.Id != id {
			kept = append(kept, u)
		}
	}
	s.users = kept
}

// VerifyCredentials looks up a user by username and compares the password
// against the stored bcrypt hash. It returns ErrInvalidCredentials for an
// unknown username and for a wrong password alike.
func (s *UserStore) VerifyCredentials(username, password string) (models.PublicUser, error) {
	s.mu.Lock()
	var found *models.User
	for i := range s.users {
		if s.users[i].Username == username {
			u := s.users[i]
			found = &u
			break
		}
	}
	s.mu.Unlock()

	if found == nil || !auth.CheckPassword(password, found.PasswordHash) {
		return models.PublicUser{}, ErrInvalidCredentials
	}
	return found.Public(), nil
}
