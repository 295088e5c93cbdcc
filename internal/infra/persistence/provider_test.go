package persistence

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"accounts/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewAccountRepository_Memory(t *testing.T) {
	for _, driver := range []string{"", config.StoreDriverMemory} {
		repo, err := NewAccountRepository(StoreParams{
			Lc:     fxtest.NewLifecycle(t),
			Config: &config.Config{Store: config.StoreConfig{Driver: driver}},
			Logger: discardLogger(),
		})
		require.NoError(t, err)

		created, err := repo.Create(context.Background(), "aaa@aaa.com", "salt.digest")
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
	}
}

func TestNewAccountRepository_Redis(t *testing.T) {
	server := miniredis.RunT(t)
	lc := fxtest.NewLifecycle(t)

	repo, err := NewAccountRepository(StoreParams{
		Lc: lc,
		Config: &config.Config{
			Store: config.StoreConfig{Driver: config.StoreDriverRedis},
			Redis: &config.RedisConfig{URL: "redis://" + server.Addr(), KeyPrefix: "svc"},
		},
		Logger: discardLogger(),
	})
	require.NoError(t, err)
	lc.RequireStart()
	defer lc.RequireStop()

	_, err = repo.Create(context.Background(), "aaa@aaa.com", "salt.digest")
	require.NoError(t, err)
	assert.True(t, server.Exists("svc:account:1"))
}

func TestNewAccountRepository_UnknownDriver(t *testing.T) {
	_, err := NewAccountRepository(StoreParams{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{Store: config.StoreConfig{Driver: "mongo"}},
		Logger: discardLogger(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown store driver")
}
