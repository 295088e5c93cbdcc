// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "errors"

// PasswordRecordDelimiter separates the salt from the digest in a password record.
const PasswordRecordDelimiter = "."

// ErrMalformedPasswordRecord is returned when a stored record does not split into salt and digest.
var ErrMalformedPasswordRecord = errors.New("malformed password record")

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying key-derivation function, keeping the domain pure.
type PasswordHasher interface {
	// GenerateSalt returns a fresh random salt of fixed length.
	GenerateSalt() (string, error)

	// HashWithSalt derives the digest of password under salt. Same inputs, same digest.
	HashWithSalt(password, salt string) (string, error)

	// Hash generates a salt and returns the record "<salt>.<digest>".
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored password record.
	Check(password, record string) (bool, error)
}
