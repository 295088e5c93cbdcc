package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"accounts/config"
	"accounts/internal/infra/auth"
	"accounts/internal/infra/persistence/memory"
	"accounts/internal/usecase/impl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createWiredAccountHandler mounts the routes over the real services, the memory store and a cheap scrypt hasher.
func createWiredAccountHandler(t *testing.T) handlerFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := memory.NewAccountRepository()
	hasher := auth.NewScryptHasherWithParams(config.ScryptConfig{N: 1 << 10})

	authUC := impl.NewAuthService(impl.AuthServiceParams{AccountRepo: repo, Hasher: hasher, Logger: logger})
	accountUC := impl.NewAccountService(impl.AccountServiceParams{AccountRepo: repo, Hasher: hasher, Logger: logger})

	return mountAccountRoutes(authUC, accountUC)
}

func TestAccountHandler_SignupSigninWithRealServices(t *testing.T) {
	fx := createWiredAccountHandler(t)
	credentials := `{"email":"flow@aaa.com","password":"hunter2"}`

	signup := fx.do(http.MethodPost, "/auth/signup", credentials)
	require.Equal(t, http.StatusCreated, signup.Code)
	created := decodeAccount(t, signup)
	createdID, ok := created["id"].(float64)
	require.True(t, ok)
	assert.NotContains(t, signup.Body.String(), "hunter2")
	assert.Equal(t, int64(createdID), fx.sessionFrom(t, signup).UserID)

	signin := fx.do(http.MethodPost, "/auth/signin", credentials)
	require.Equal(t, http.StatusOK, signin.Code)
	assert.Equal(t, int64(createdID), fx.sessionFrom(t, signin).UserID)

	whoami := fx.do(http.MethodGet, "/auth/whoami", "", signin.Result().Cookies()...)
	require.Equal(t, http.StatusOK, whoami.Code)
	me := decodeAccount(t, whoami)
	assert.Equal(t, createdID, me["id"])
	assert.Equal(t, "flow@aaa.com", me["email"])

	duplicate := fx.do(http.MethodPost, "/auth/signup", `{"email":"flow@aaa.com","password":"other"}`)
	assert.Equal(t, http.StatusBadRequest, duplicate.Code)
	assert.Equal(t, "ACCOUNT_ALREADY_EXISTS", decode(t, duplicate).Error.Code)

	wrong := fx.do(http.MethodPost, "/auth/signin", `{"email":"flow@aaa.com","password":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, wrong.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decode(t, wrong).Error.Code)
	assert.Empty(t, wrong.Result().Cookies())
}
