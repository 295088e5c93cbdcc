// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"accounts/internal/delivery/api/response"
	"accounts/internal/delivery/api/session"
	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AuthUC    usecase.AuthUsecase
	AccountUC usecase.AccountUsecase
	Sessions  session.Store
	Logger    *slog.Logger
}

// AccountHandler serves the /auth routes.
type AccountHandler struct {
	authUC    usecase.AuthUsecase
	accountUC usecase.AccountUsecase
	sessions  session.Store
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		authUC:    params.AuthUC,
		accountUC: params.AccountUC,
		sessions:  params.Sessions,
		logger:    params.Logger,
	}
}

// CredentialsRequest is the body of signup and signin.
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateAccountRequest is the body of PATCH /auth/:id. Absent fields are left unchanged.
type UpdateAccountRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password"`
}

// FindAccountsQuery is the query of GET /auth.
type FindAccountsQuery struct {
	Email string `query:"email" json:"email" validate:"required"`
}

// Signup creates an account and signs the caller in as it.
func (h *AccountHandler) Signup(c echo.Context) error {
	var req CredentialsRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.Signup(c.Request().Context(), &usecase.SignupInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	sess := deliverycontext.GetSession(c)
	output.Session.Apply(sess)
	if err := h.sessions.Save(c, sess); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Account)
}

// Signin verifies credentials and assigns the account id to the caller's session.
func (h *AccountHandler) Signin(c echo.Context) error {
	var req CredentialsRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.Signin(c.Request().Context(), &usecase.SigninInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	sess := deliverycontext.GetSession(c)
	output.Session.Apply(sess)
	if err := h.sessions.Save(c, sess); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Account)
}

// Signout clears the user id from the caller's session.
func (h *AccountHandler) Signout(c echo.Context) error {
	sess := deliverycontext.GetSession(c)
	sess.UserID = 0
	if err := h.sessions.Save(c, sess); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// WhoAmI returns the signed-in account.
func (h *AccountHandler) WhoAmI(c echo.Context) error {
	sess := deliverycontext.GetSession(c)
	if !sess.SignedIn() {
		return domainerrors.ErrNotSignedIn
	}

	account, err := h.accountUC.FindUser(c.Request().Context(), sess.UserID)
	if errors.Is(err, domainerrors.ErrAccountNotFound) {
		// The account behind the cookie is gone.
		return domainerrors.ErrNotSignedIn.WrapMessage("session account removed")
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, account)
}

// FindAllUsers lists the accounts registered under ?email=.
func (h *AccountHandler) FindAllUsers(c echo.Context) error {
	var query FindAccountsQuery
	if err := h.bindAndValidate(c, &query); err != nil {
		return err
	}

	accounts, err := h.accountUC.FindAllUsers(c.Request().Context(), query.Email)
	if err != nil {
		return errors.WithStack(err)
	}
	if accounts == nil {
		accounts = []*entity.Account{}
	}

	return response.Success(c, http.StatusOK, accounts)
}

// FindUser returns the account with the path id.
func (h *AccountHandler) FindUser(c echo.Context) error {
	id, err := parseAccountID(c)
	if err != nil {
		return err
	}

	account, err := h.accountUC.FindUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, account)
}

// UpdateUser changes the email and/or password of the account with the path id.
func (h *AccountHandler) UpdateUser(c echo.Context) error {
	id, err := parseAccountID(c)
	if err != nil {
		return err
	}

	var req UpdateAccountRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return err
	}

	account, err := h.accountUC.UpdateUser(c.Request().Context(), id, &usecase.UpdateAccountInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, account)
}

// RemoveUser deletes the account with the path id.
func (h *AccountHandler) RemoveUser(c echo.Context) error {
	id, err := parseAccountID(c)
	if err != nil {
		return err
	}

	account, err := h.accountUC.RemoveUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, account)
}

func (h *AccountHandler) bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request")
	}

	return c.Validate(req)
}

func parseAccountID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("id must be a positive integer")
	}

	return id, nil
}
