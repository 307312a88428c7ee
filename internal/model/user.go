package model

import "time"

const (
	RoleOwner  = "owner"
	RoleDriver = "driver"
)

const (
	DefaultPermissions = "basic"
	DefaultUserStatus  = "active"
)

// User represents an account in the directory
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Do not expose the password hash in JSON responses
	Role         string    `json:"role"`
	Name         string    `json:"name"`
	Permissions  string    `json:"permissions"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LoginRequest carries the credential-check payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateUserRequest is used by owners to provision accounts
type CreateUserRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	Role        string `json:"role" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Permissions string `json:"permissions"`
}

// UpdateUserRequest is a merge patch under the truthy-overwrite policy:
// only non-empty fields are written, absent or empty fields are left untouched.
type UpdateUserRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	Name        string `json:"name"`
	Permissions string `json:"permissions"`
	Status      string `json:"status"`
}
