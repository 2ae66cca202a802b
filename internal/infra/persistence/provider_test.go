package persistence

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"alertstream/config"
	"alertstream/internal/domain/constants"
	"alertstream/internal/domain/entity"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewRepositories_SQLite(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = constants.StorageDriverSQLite
	cfg.Storage.SQLite.DSN = filepath.Join(t.TempDir(), "alerts.db")

	lc := fxtest.NewLifecycle(t)
	repos, err := NewRepositories(Params{
		Lifecycle: lc,
		Config:    cfg,
		Logger:    newDiscardLogger(),
		Clock:     clock.NewMock(),
	})
	require.NoError(t, err)

	lc.RequireStart()
	defer lc.RequireStop()

	ctx := context.Background()
	alert := &entity.Alert{Message: "hello", Kind: entity.AlertKindManual, Recipients: entity.BroadcastRecipients()}
	require.NoError(t, repos.Alerts.Create(ctx, alert))

	ids, err := repos.Users.ListUserIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestNewRepositories_Errors(t *testing.T) {
	tests := []struct {
		name   string
		driver string
	}{
		{name: "unknown driver", driver: "mongo"},
		{name: "postgres without configuration", driver: constants.StorageDriverPostgres},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Storage.Driver = tt.driver

			_, err := NewRepositories(Params{
				Lifecycle: fxtest.NewLifecycle(t),
				Config:    cfg,
				Logger:    newDiscardLogger(),
				Clock:     clock.NewMock(),
			})

			assert.Error(t, err)
		})
	}
}
