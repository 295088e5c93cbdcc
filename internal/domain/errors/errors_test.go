package errors

import (
	"net/http"
	"testing"

	"accounts/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrAccountAlreadyExists.WrapMessage("signup failed")

	assert.True(t, errors.Is(err, ErrAccountAlreadyExists))
	assert.False(t, errors.Is(err, ErrInvalidCredentials))

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "ACCOUNT_ALREADY_EXISTS", appErr.ErrorCode())
}

func TestBaseError_WithDetailsMatchesOriginal(t *testing.T) {
	detailed := ErrAccountNotFound.WithDetails("id=42")

	assert.Equal(t, "id=42", detailed.Details())
	assert.Empty(t, ErrAccountNotFound.Details())
	assert.True(t, errors.Is(detailed, ErrAccountNotFound))
}

func TestErrorKinds_MapToClientStatuses(t *testing.T) {
	tests := []struct {
		name string
		err  *BaseError
		code int
	}{
		{name: "duplicate account", err: ErrAccountAlreadyExists, code: http.StatusBadRequest},
		{name: "account not found", err: ErrAccountNotFound, code: http.StatusNotFound},
		{name: "invalid credentials", err: ErrInvalidCredentials, code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.HTTPCode())
		})
	}
}

func TestDatabaseExecuteError_Unwraps(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to create account")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Contains(t, err.Error(), "connection reset")
}
