package usecase

import (
	"context"

	"accounts/internal/domain/entity"
)

// UpdateAccountInput carries the optional fields of an account update.
// Password is plaintext and is hashed before it reaches the store.
type UpdateAccountInput struct {
	Email    *string
	Password *string
}

// AccountUsecase defines account lookup and maintenance.
type AccountUsecase interface {
	FindAllUsers(ctx context.Context, email string) ([]*entity.Account, error)
	FindUser(ctx context.Context, id int64) (*entity.Account, error)
	UpdateUser(ctx context.Context, id int64, input *UpdateAccountInput) (*entity.Account, error)
	RemoveUser(ctx context.Context, id int64) (*entity.Account, error)
}
