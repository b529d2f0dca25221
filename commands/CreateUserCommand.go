package commands

// CreateUserCommand represents a command to create a new user.
// All fields are required; values are checked for presence only.
type CreateUserCommand struct {
	Name     string `json:"name" validate:"required,notblank"`
	Username string `json:"username" validate:"required,notblank"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,notblank"`
}
