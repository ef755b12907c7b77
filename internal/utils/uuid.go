package utils

import "github.com/google/uuid"

// NewUUID returns a time-ordered v7 UUID. Time-ordered identifiers keep
// b-tree inserts append-mostly on the primary key index. Falls back to a
// random v4 UUID when v7 generation fails.
func NewUUID() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return v7
}
