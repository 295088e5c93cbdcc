// Package persistence selects the account store implementation from configuration.
package persistence

import (
	"log/slog"

	"accounts/config"
	"accounts/internal/domain/repository"
	"accounts/internal/infra/persistence/memory"
	"accounts/internal/infra/persistence/postgres"
	redisstore "accounts/internal/infra/persistence/redis"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the account store, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewAccountRepository builds the store named by store.driver.
// Connections for postgres and redis are only opened when selected.
func NewAccountRepository(params StoreParams) (repository.AccountRepository, error) {
	cfg := params.Config
	logger := params.Logger.With(slog.String("driver", cfg.Store.Driver))

	switch cfg.Store.Driver {
	case config.StoreDriverMemory, "":
		logger.Info("Using in-memory account store")

		return memory.NewAccountRepository(), nil

	case config.StoreDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    cfg,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("Using PostgreSQL account store")

		return postgres.NewAccountRepository(db), nil

	case config.StoreDriverRedis:
		client, err := redisstore.NewClient(redisstore.Params{
			Lifecycle: params.Lc,
			Config:    cfg,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("Using Redis account store", slog.String("key_prefix", cfg.Redis.KeyPrefix))

		return redisstore.NewAccountRepository(client, cfg.Redis.KeyPrefix), nil

	default:
		return nil, errors.Errorf("unknown store driver: %s", cfg.Store.Driver)
	}
}

// Module provides the account store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewAccountRepository),
)
