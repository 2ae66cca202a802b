// Package sqlite contains an embedded implementation of the persistence layer on top of
// database/sql and the pure Go modernc SQLite driver.
package sqlite

import (
	"context"
	"database/sql"
	"log/slog"

	"alertstream/config"
	"alertstream/internal/domain/lifecycle"
	"alertstream/internal/errors"

	"go.uber.org/fx"
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    INTEGER NOT NULL,
		updated_at    INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS alerts (
		id         TEXT PRIMARY KEY,
		message    TEXT NOT NULL,
		kind       TEXT NOT NULL,
		broadcast  INTEGER NOT NULL DEFAULT 0,
		is_read    INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_alerts_created_at ON alerts (created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS alert_recipients (
		alert_id TEXT NOT NULL REFERENCES alerts (id) ON DELETE CASCADE,
		user_id  TEXT NOT NULL,
		position INTEGER NOT NULL,
		PRIMARY KEY (alert_id, user_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_alert_recipients_user_id ON alert_recipients (user_id)`,
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the SQLite database and creates the schema when the application starts.
func New(params Params) (*sql.DB, error) {
	dsn := params.Config.Storage.SQLite.DSN

	db, err := Open(dsn)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := Migrate(ctx, db); err != nil {
				return err
			}
			params.Logger.Info("SQLite store ready", slog.String("dsn", dsn))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.WithStack(db.Close())
		},
	})

	return db, nil
}

// Open opens a SQLite database. SQLite allows one writer at a time, so the pool is
// limited to a single connection; callers must close rows before issuing the next query.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}
	db.SetMaxOpenConns(1)

	return db, nil
}

// Migrate creates any missing tables and indexes.
func Migrate(ctx context.Context, db *sql.DB) error {
	if err := db.PingContext(ctx); err != nil {
		return errors.Wrap(err, "failed to ping SQLite")
	}

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "failed to create SQLite schema")
		}
	}

	return nil
}
