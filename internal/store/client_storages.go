package store

import (
	"context"
	"fmt"

	"github.com/jeremy-dai/hi-time-sub000/internal/config"
	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
)

// ClientStorages groups the client-side stores: the resource cache and the
// session slot.
type ClientStorages struct {
	Cache    LocalCache
	Sessions SessionStore

	db *DB
}

// NewClientStorages opens the SQLite file at cfg.DB.DSN (creating it when
// missing), applies migrations and wires the stores. An empty DSN yields
// in-memory stores that vanish with the process.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	if cfg.DB.DSN == "" {
		mem := NewMemoryCache()
		return &ClientStorages{Cache: mem, Sessions: mem}, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Cache:    NewSQLiteCache(db, logger),
		Sessions: NewSQLiteSessionStore(db, logger),
		db:       db,
	}, nil
}

// Close releases the SQLite connection, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
