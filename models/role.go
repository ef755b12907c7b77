package models

import "github.com/google/uuid"

// Role is a named grant underlying authorization decisions.
// Roles are static reference data seeded by migrations and are not
// created or renamed at runtime.
type Role struct {
	// ID is the unique identifier of the role.
	ID uuid.UUID `json:"id"`

	// Name is the unique role name (e.g. "user", "admin").
	Name string `json:"name"`
}

// TableName returns the name of the database table
// associated with the Role model.
func (r Role) TableName() string {
	return "roles"
}

// UserRole is the join entity binding a user to a role.
// At most one row may exist per (UserID, RoleID) pair; the database enforces
// this with a unique index and the role service rejects duplicates before
// the INSERT is attempted.
type UserRole struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`
	RoleID uuid.UUID `json:"role_id"`
}

// TableName returns the name of the database table
// associated with the UserRole model.
func (ur UserRole) TableName() string {
	return "user_role"
}
