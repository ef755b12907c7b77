package models

import (
	"time"

	"github.com/google/uuid"
)

// History is a single login audit record. Rows are append-only: one row is
// written per successful sign-in and rows are never updated or deleted.
type History struct {
	// ID is the unique identifier of the history entry.
	ID uuid.UUID `json:"id"`

	// UserID references the user who signed in.
	UserID uuid.UUID `json:"user_id"`

	// CreatedAt is the sign-in timestamp.
	CreatedAt time.Time `json:"login_time"`
}

// TableName returns the name of the database table
// associated with the History model.
func (h History) TableName() string {
	return "history"
}
