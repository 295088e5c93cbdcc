// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"accounts/internal/domain/entity"
)

// ErrAccountNotFound is returned by lookups by id when no account matches.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository is the credential store the auth core depends on.
// Implementations do not have to enforce email uniqueness; the auth core checks before creating.
type AccountRepository interface {
	// Find returns every account stored under the given email. An empty slice means none.
	Find(ctx context.Context, email string) ([]*entity.Account, error)

	// Create persists a new account with an already-hashed password record.
	Create(ctx context.Context, email, password string) (*entity.Account, error)

	// FindByID retrieves a single account, or ErrAccountNotFound.
	FindByID(ctx context.Context, id int64) (*entity.Account, error)

	// Update applies attrs to the account with the given id, or returns ErrAccountNotFound.
	Update(ctx context.Context, id int64, attrs entity.AccountAttrs) (*entity.Account, error)

	// Remove deletes the account and returns its last state, or ErrAccountNotFound.
	Remove(ctx context.Context, id int64) (*entity.Account, error)
}
