// Package commands contains the commands for the application to be used for request inputs.
package commands

// LoginCommand represents the credentials supplied to the login endpoint.
type LoginCommand struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
