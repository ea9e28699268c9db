package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/jeremy-dai/hi-time-sub000/internal/config"
	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/migrations"
)

// NewConnectPostgres opens the server database through pgx's database/sql
// driver.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := openDB(ctx, "pgx", cfg.DSN, 10, 4, log)
	if err != nil {
		return nil, err
	}

	return &DB{
		DB:                 conn,
		dialect:            migrations.DialectPostgres,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}, nil
}

// postgresError returns the SQLSTATE of err, or "" when err did not come
// from the server.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
