package domain

import "github.com/google/uuid"

// NewSessionID creates a new unique identifier for a card run.
func NewSessionID() string {
	return uuid.New().String()
}
