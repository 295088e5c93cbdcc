package impl

import (
	"context"
	"log/slog"
	"strconv"

	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/errors"
	"accounts/internal/usecase"

	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FindAllUsers lists the accounts stored under email.
func (srv *accountService) FindAllUsers(ctx context.Context, email string) ([]*entity.Account, error) {
	accounts, err := srv.accountRepo.Find(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find accounts by email")
	}

	return accounts, nil
}

// FindUser returns the account with the given id.
func (srv *accountService) FindUser(ctx context.Context, id int64) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, id)
	}

	return account, nil
}

// UpdateUser changes the email and/or password of an account.
// A new password is hashed here; the store only ever sees records.
func (srv *accountService) UpdateUser(ctx context.Context, id int64, input *usecase.UpdateAccountInput) (*entity.Account, error) {
	if input == nil || (input.Email == nil && input.Password == nil) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("nothing to update")
	}

	var attrs entity.AccountAttrs

	if input.Email != nil {
		if *input.Email == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("email must not be empty")
		}
		if err := srv.ensureEmailAvailable(ctx, id, *input.Email); err != nil {
			return nil, err
		}
		attrs.Email = input.Email
	}

	if input.Password != nil {
		if *input.Password == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("password must not be empty")
		}
		record, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

			return nil, errors.Wrap(errors.Join(domainerrors.ErrPasswordHashFailed, err), "update account")
		}
		attrs.Password = &record
	}

	account, err := srv.accountRepo.Update(ctx, id, attrs)
	if err != nil {
		return nil, mapNotFound(err, id)
	}

	srv.log(ctx).Info("Account updated", slog.Int64("accountID", id))

	return account, nil
}

// RemoveUser deletes the account and returns its last state.
func (srv *accountService) RemoveUser(ctx context.Context, id int64) (*entity.Account, error) {
	account, err := srv.accountRepo.Remove(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, id)
	}

	srv.log(ctx).Info("Account removed", slog.Int64("accountID", id))

	return account, nil
}

func (srv *accountService) ensureEmailAvailable(ctx context.Context, id int64, email string) error {
	holders, err := srv.accountRepo.Find(ctx, email)
	if err != nil {
		return errors.Wrap(err, "failed to find accounts by email")
	}
	for _, holder := range holders {
		if holder.ID != id {
			return domainerrors.ErrAccountAlreadyExists.WrapMessage("update account")
		}
	}

	return nil
}

func mapNotFound(err error, id int64) error {
	if errors.Is(err, repository.ErrAccountNotFound) {
		return domainerrors.ErrAccountNotFound.WrapMessage("account " + strconv.FormatInt(id, 10))
	}

	return errors.Wrap(err, "account store")
}
