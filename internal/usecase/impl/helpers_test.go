package impl

import (
	"io"
	"log/slog"

	"accounts/config"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/infra/auth"
	"accounts/internal/infra/persistence/memory"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestHasher uses a reduced scrypt cost so the suite stays fast.
func newTestHasher() service.PasswordHasher {
	return auth.NewScryptHasherWithParams(config.ScryptConfig{N: 1 << 10})
}

func newMemoryAuthService() (*authService, repository.AccountRepository) {
	repo := memory.NewAccountRepository()
	srv := NewAuthService(AuthServiceParams{
		AccountRepo: repo,
		Hasher:      newTestHasher(),
		Logger:      newDiscardLogger(),
	}).(*authService)

	return srv, repo
}
