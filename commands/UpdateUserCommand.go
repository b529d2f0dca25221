package commands

// UpdateUserCommand represents a command to partially update a user.
// Empty fields keep the current value; username and password cannot be
// changed after creation.
type UpdateUserCommand struct {
	Name string `json:"name"`
	Role string `json:"role"`
}
