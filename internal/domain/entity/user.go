// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns products and documents.
type User struct {
	ID           uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the user.
	Username     string    `json:"username"`   // Display name chosen at signup.
	Email        string    `json:"email"`      // Unique login identifier.
	PasswordHash string    `json:"-"`          // bcrypt hash, never the plaintext.
	CreatedAt    time.Time `json:"created_at"` // Timestamp of when this account was created.
	UpdatedAt    time.Time `json:"updated_at"` // Timestamp of the last modification.
}
