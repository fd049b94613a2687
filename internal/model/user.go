package model

import "time"

// Role is the single access classification stored on a user.
type Role string

const (
	RoleNone     Role = ""
	RoleAdmin    Role = "admin"
	RoleSurveyor Role = "surveyor"
	RoleProUser  Role = "prouser"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleNone, RoleAdmin, RoleSurveyor, RoleProUser:
		return true
	}
	return false
}

// User represents a registered platform user
type User struct {
	ID        string    `json:"_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	PhotoURL  string    `json:"photoURL,omitempty"`
	Role      Role      `json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateUserRequest is the payload of POST /users
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
}

// Identity is the payload a client exchanges for a session token.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}
