// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Account is the persisted identity record of a person who signed up.
type Account struct {
	ID        int64     `json:"id"`    // Numeric identifier assigned by the store at creation.
	Email     string    `json:"email"` // Case-sensitive login identifier.
	Password  string    `json:"-"`     // Password record in the form "<salt>.<digest>". Never plaintext.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AccountAttrs carries the fields an update may change. Nil fields are left untouched.
type AccountAttrs struct {
	Email    *string
	Password *string // Already a password record, not plaintext.
}
