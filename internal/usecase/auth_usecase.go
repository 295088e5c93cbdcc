// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"accounts/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the credentials submitted to create an account.
type SignupInput struct {
	Email    string
	Password string
}

// SigninInput defines the credentials submitted to sign in.
type SigninInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// SignupOutput returns the newly created account and the session change that signs the caller in as it.
type SignupOutput struct {
	Account *entity.Account
	Session SessionPatch
}

// SigninOutput returns the verified account and the session change the caller must apply.
type SigninOutput struct {
	Account *entity.Account
	Session SessionPatch
}

// SessionPatch describes the session fields a successful signup or signin assigns.
type SessionPatch struct {
	UserID int64
}

// Apply writes the patch onto the caller-owned session.
func (p SessionPatch) Apply(session *entity.Session) {
	if session == nil {
		return
	}
	session.UserID = p.UserID
}

// AuthUsecase defines signup and signin.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)
	Signin(ctx context.Context, input *SigninInput) (*SigninOutput, error)
}
