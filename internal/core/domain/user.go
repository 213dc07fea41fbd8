package domain

import (
	"errors"
	"time"
)

// Role is the authorization role carried by every user and token.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleSales Role = "sales"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleSales
}

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrMissingFields = errors.New("missing fields")

// User models an authenticated actor. Role is immutable through the public
// API surface: no endpoint changes another user's role after registration.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
