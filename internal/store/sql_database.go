package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/migrations"
)

// DB wraps a *sql.DB together with the dialect it speaks and the error
// classifier matching its driver.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// openDB opens driver at dsn, applies the pool limits and pings it. The
// connection is closed again when the ping fails.
func openDB(ctx context.Context, driver, dsn string, maxOpen, maxIdle int, log *logger.Logger) (*sql.DB, error) {
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		log.Err(err).Str("driver", driver).Msg("error opening database")
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	conn.SetMaxOpenConns(maxOpen)
	conn.SetMaxIdleConns(maxIdle)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("driver", driver).Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("ping %s database: %w", driver, err)
	}

	log.Debug().Str("driver", driver).Msg("connected to database")
	return conn, nil
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Classify reports whether err may be retried. Errors from drivers without
// a classifier are treated as retryable.
func (db *DB) Classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return Retryable
	}
	return db.errorClassificator.Classify(err)
}
