// Package models contains the data models for the application to be used in request handling.
package models

// User represents a user account in the in-memory store.
// User has the following properties:
// - Id: The unique identifier of the user, assigned sequentially.
// - Name: The display name of the user.
// - Username: The unique login name of the user (case-sensitive).
// - Role: The role assigned to the user, e.g. "admin" or "user".
// - PasswordHash: The bcrypt hash of the user's password. Never serialized to JSON.
type User struct {
	Id           int    `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	Role         string `json:"role"`
	PasswordHash string `json:"-"`
}

// PublicUser is the projection of a User that is safe to return to clients.
// It carries every User field except the password hash.
type PublicUser struct {
	Id       int    `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Public returns the client-safe projection of the user.
func (u User) Public() PublicUser {
	return PublicUser{
		Id:       u.Id,
		Name:     u.Name,
		Username: u.Username,
		Role:     u.Role,
	}
}

// PublicProfile is the reduced view of a user exposed on the unauthenticated
// dashboard endpoint.
type PublicProfile struct {
	Name string `json:"name"`
	Role string `json:"role"`
}
