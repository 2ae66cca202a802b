// Package persistence selects the alert store backend configured for the process.
package persistence

import (
	"log/slog"

	"alertstream/config"
	"alertstream/internal/domain/constants"
	"alertstream/internal/domain/repository"
	"alertstream/internal/errors"
	"alertstream/internal/infra/persistence/postgres"
	"alertstream/internal/infra/persistence/sqlite"

	"github.com/benbjohnson/clock"
	"go.uber.org/fx"
)

// Params holds dependencies for the repositories, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	Clock  clock.Clock
}

// Repositories are the stores shared by the use cases and the scheduler
type Repositories struct {
	fx.Out

	Alerts repository.AlertRepository
	Users  repository.UserRepository
}

// NewRepositories opens the configured backend and builds its repositories
func NewRepositories(params Params) (Repositories, error) {
	driver := params.Config.Storage.Driver

	switch driver {
	case constants.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}
		params.Logger.Info("Using PostgreSQL alert store")

		return Repositories{
			Alerts: postgres.NewAlertRepository(db),
			Users:  postgres.NewUserRepository(db),
		}, nil

	case constants.StorageDriverSQLite:
		db, err := sqlite.New(sqlite.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}
		params.Logger.Info("Using SQLite alert store")

		return Repositories{
			Alerts: sqlite.NewAlertRepository(db, params.Clock),
			Users:  sqlite.NewUserRepository(db, params.Clock),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown storage driver: %s", driver)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRepositories),
)
