package redis

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"accounts/config"
	"accounts/internal/domain/entity"
	"accounts/internal/domain/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestRepository(t *testing.T) (*accountRepository, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := NewAccountRepository(client, "test").(*accountRepository)
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	return repo, server
}

func TestAccountRepository_CreateAndFind(t *testing.T) {
	repo, server := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, "aaa@aaa.com", "salt.digest")
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	second, err := repo.Create(ctx, "bbb@bbb.com", "salt.digest")
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)

	found, err := repo.Find(ctx, "aaa@aaa.com")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, created.ID, found[0].ID)
	assert.Equal(t, "salt.digest", found[0].Password)
	assert.True(t, created.CreatedAt.Equal(found[0].CreatedAt))

	assert.Equal(t, "aaa@aaa.com", server.HGet("test:account:1", "email"))
	seq, err := server.Get("test:account:seq")
	require.NoError(t, err)
	assert.Equal(t, "2", seq)
}

func TestAccountRepository_FindUnknownEmail(t *testing.T) {
	repo, _ := newTestRepository(t)

	found, err := repo.Find(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.NotNil(t, found)
	assert.Empty(t, found)
}

func TestAccountRepository_FindIsCaseSensitive(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, "aaa@aaa.com", "salt.digest")
	require.NoError(t, err)

	found, err := repo.Find(ctx, "AAA@aaa.com")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestAccountRepository_DuplicatesKeepIDOrder(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	for range 3 {
		_, err := repo.Create(ctx, "aaa@aaa.com", "salt.digest")
		require.NoError(t, err)
	}

	found, err := repo.Find(ctx, "aaa@aaa.com")
	require.NoError(t, err)
	require.Len(t, found, 3)
	for i, account := range found {
		assert.Equal(t, int64(i+1), account.ID)
	}
}

func TestAccountRepository_FindSkipsDanglingIndexEntries(t *testing.T) {
	repo, server := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, "aaa@aaa.com", "salt.digest")
	require.NoError(t, err)
	server.Del("test:account:1")

	found, err := repo.Find(ctx, "aaa@aaa.com")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestAccountRepository_FindByID(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, "aaa@aaa.com", "salt.digest")
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "aaa@aaa.com", found.Email)

	_, err = repo.FindByID(ctx, 42)
	assert.True(t, errors.Is(err, repository.ErrAccountNotFound))
}

func TestAccountRepository_UpdateMovesEmailIndex(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, "aaa@aaa.com", "salt.digest")
	require.NoError(t, err)

	email := "ccc@ccc.com"
	updated, err := repo.Update(ctx, created.ID, entity.AccountAttrs{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, email, updated.Email)
	assert.Equal(t, "salt.digest", updated.Password)

	old, err := repo.Find(ctx, "aaa@aaa.com")
	require.NoError(t, err)
	assert.Empty(t, old)

	moved, err := repo.Find(ctx, email)
	require.NoError(t, err)
	require.Len(t, moved, 1)
	assert.Equal(t, created.ID, moved[0].ID)

	_, err = repo.Update(ctx, 42, entity.AccountAttrs{Email: &email})
	assert.True(t, errors.Is(err, repository.ErrAccountNotFound))
}

func TestAccountRepository_Remove(t *testing.T) {
	repo, server := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, "aaa@aaa.com", "salt.digest")
	require.NoError(t, err)

	removed, err := repo.Remove(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, removed.ID)
	assert.False(t, server.Exists("test:account:1"))

	found, err := repo.Find(ctx, "aaa@aaa.com")
	require.NoError(t, err)
	assert.Empty(t, found)

	_, err = repo.Remove(ctx, created.ID)
	assert.True(t, errors.Is(err, repository.ErrAccountNotFound))
}

func TestAccountRepository_DefaultPrefix(t *testing.T) {
	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := NewAccountRepository(client, "")
	_, err := repo.Create(context.Background(), "aaa@aaa.com", "salt.digest")
	require.NoError(t, err)
	assert.True(t, server.Exists("accounts:account:1"))
}

func TestAccountRepository_StoreUnavailable(t *testing.T) {
	repo, server := newTestRepository(t)
	server.Close()

	_, err := repo.Create(context.Background(), "aaa@aaa.com", "salt.digest")
	require.Error(t, err)
}

func TestNewClient(t *testing.T) {
	server := miniredis.RunT(t)
	lc := fxtest.NewLifecycle(t)

	client, err := NewClient(Params{
		Lifecycle: lc,
		Config:    &config.Config{Redis: &config.RedisConfig{URL: "redis://" + server.Addr() + "/0"}},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	lc.RequireStart()
	require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	lc.RequireStop()
}

func TestNewClient_InvalidURL(t *testing.T) {
	_, err := NewClient(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{Redis: &config.RedisConfig{URL: "://bad"}},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.Error(t, err)
}
