package entity

import (
	"fmt"
	"time"
)

// Role is the closed set of authorization roles. It is fixed at user
// creation; every authorization decision switches exhaustively over it.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleVeterinarian Role = "veterinarian"
	RoleClient       Role = "client"
)

// ParseRole validates a client-supplied role string. Empty defaults to client.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleVeterinarian, RoleClient:
		return Role(s), nil
	case "":
		return RoleClient, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleVeterinarian, RoleClient:
		return true
	}
	return false
}

// User is the aggregate root: pets and appointments reference it by id.
// Password holds the bcrypt hash, never the plaintext.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
