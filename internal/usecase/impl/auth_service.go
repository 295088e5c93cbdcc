// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "accounts/internal/delivery/context"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/errors"
	"accounts/internal/usecase"

	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates an account after checking the email is not taken.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	if err := validateCredentials(input.Email, input.Password); err != nil {
		return nil, err
	}

	existing, err := srv.accountRepo.Find(ctx, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find accounts by email")
	}
	if len(existing) > 0 {
		srv.log(ctx).Info("Signup rejected, email in use", slog.String("email", input.Email))

		return nil, domainerrors.ErrAccountAlreadyExists.WrapMessage("signup")
	}

	record, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, errors.Wrap(errors.Join(domainerrors.ErrPasswordHashFailed, err), "signup")
	}

	account, err := srv.accountRepo.Create(ctx, input.Email, record)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Info("Account created", slog.Int64("accountID", account.ID))

	return &usecase.SignupOutput{
		Account: account,
		Session: usecase.SessionPatch{UserID: account.ID},
	}, nil
}

// Signin verifies the password against the first account stored under the email.
func (srv *authService) Signin(ctx context.Context, input *usecase.SigninInput) (*usecase.SigninOutput, error) {
	if err := validateCredentials(input.Email, input.Password); err != nil {
		return nil, err
	}

	accounts, err := srv.accountRepo.Find(ctx, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find accounts by email")
	}
	if len(accounts) == 0 {
		return nil, domainerrors.ErrAccountNotFound.WrapMessage("signin")
	}

	account := accounts[0]
	matched, err := srv.hasher.Check(input.Password, account.Password)
	if err != nil {
		srv.log(ctx).Error("Stored password record is unusable",
			slog.Int64("accountID", account.ID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to verify password")
	}
	if !matched {
		srv.log(ctx).Info("Signin rejected, bad password", slog.Int64("accountID", account.ID))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("signin")
	}

	srv.log(ctx).Debug("Signin succeeded", slog.Int64("accountID", account.ID))

	return &usecase.SigninOutput{
		Account: account,
		Session: usecase.SessionPatch{UserID: account.ID},
	}, nil
}

func validateCredentials(email, password string) error {
	if email == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("email is required")
	}
	if password == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("password is required")
	}

	return nil
}
