package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user.
	ID uuid.UUID `json:"id"`

	// Login is the unique user login identifier.
	// Typically used during authentication.
	Login string `json:"login"`

	// Password stores the bcrypt hash of the user's password, never plaintext.
	// For accounts created through an OAuth sign-in the hash is derived from a
	// random placeholder and cannot be used to sign in with a password.
	Password string `json:"-"`

	// FirstName is the optional given name of the user.
	FirstName string `json:"first_name,omitempty"`

	// LastName is the optional family name of the user.
	LastName string `json:"last_name,omitempty"`

	// IsSuperuser marks accounts allowed to manage role assignments and to
	// read other users' login history.
	IsSuperuser bool `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
