package store

import (
	"context"
	"fmt"

	"github.com/jeremy-dai/hi-time-sub000/internal/config"
	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
)

// Storages groups the server-side repositories.
type Storages struct {
	UserRepository     UserRepository
	ResourceRepository ResourceRepository
	TableExporter      TableExporter

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and builds every
// repository on the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewStoragesFromDB(db, logger), nil
}

// NewStoragesFromDB builds the repositories on an already opened connection.
func NewStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		ResourceRepository: NewResourceRepository(db, logger),
		TableExporter:      NewTableExporter(db, logger),
		db:                 db,
	}
}

// DB exposes the shared connection, e.g. for error classification.
func (s *Storages) DB() *DB {
	return s.db
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
