package domain

import (
	"slices"
	"time"
)

// Role is a closed enumeration of the roles a user may hold. The legacy
// system treated roles as free-form strings; this implementation tightens
// them to a fixed set.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleTrainer Role = "TRAINER"
	RoleUser    Role = "USER"
)

// Valid reports whether r is one of the recognized roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleTrainer || r == RoleUser
}

// User models a club member. Roles carry membership-set semantics: a user may
// hold any combination, and may act as trainer on one session while being a
// plain participant on another.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Roles        []Role    `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasRole reports whether the user holds the given role.
func (u *User) HasRole(role Role) bool {
	return slices.Contains(u.Roles, role)
}

// IsAdmin is shorthand for HasRole(RoleAdmin).
func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}
