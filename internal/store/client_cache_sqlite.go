package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

type sqliteCache struct {
	*DB
	logger *logger.Logger
}

// NewSQLiteCache returns a [LocalCache] stored in the client's SQLite file.
func NewSQLiteCache(db *DB, logger *logger.Logger) LocalCache {
	return &sqliteCache{DB: db, logger: logger}
}

func (c *sqliteCache) Read(ctx context.Context, key string) (models.CacheEntry, bool, error) {
	var (
		value              string
		dirty, deleted     bool
		syncedAt, updateAt int64
	)
	err := c.QueryRowContext(ctx, readCacheEntry, key).Scan(&value, &dirty, &deleted, &syncedAt, &updateAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CacheEntry{}, false, nil
	}
	if err != nil {
		c.logger.Err(err).Str("func", "*sqliteCache.Read").Str("key", key).Msg("failed to read cache entry")
		return models.CacheEntry{}, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if !json.Valid([]byte(value)) {
		c.logger.Warn().Str("func", "*sqliteCache.Read").Str("key", key).Msg("cached value is not valid JSON, treating as missing")
		return models.CacheEntry{}, false, nil
	}

	return models.CacheEntry{
		Value:        json.RawMessage(value),
		Dirty:        dirty,
		Deleted:      deleted,
		LastSyncedAt: fromUnixMilli(syncedAt),
		UpdatedAt:    fromUnixMilli(updateAt),
	}, true, nil
}

func (c *sqliteCache) Write(ctx context.Context, key string, entry models.CacheEntry) error {
	value := entry.Value
	if len(value) == 0 {
		value = json.RawMessage("null")
	}
	if entry.UpdatedAt.IsZero() {
		entry.UpdatedAt = time.Now()
	}

	_, err := c.ExecContext(ctx, writeCacheEntry,
		key,
		string(value),
		entry.Dirty,
		entry.Deleted,
		toUnixMilli(entry.LastSyncedAt),
		toUnixMilli(entry.UpdatedAt),
	)
	if err != nil {
		c.logger.Err(err).Str("func", "*sqliteCache.Write").Str("key", key).Msg("failed to write cache entry")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (c *sqliteCache) Clear(ctx context.Context, key string) error {
	if _, err := c.ExecContext(ctx, clearCacheEntry, key); err != nil {
		c.logger.Err(err).Str("func", "*sqliteCache.Clear").Str("key", key).Msg("failed to clear cache entry")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (c *sqliteCache) Keys(ctx context.Context, prefix string) ([]string, error) {
	rows, err := c.QueryContext(ctx, listCacheKeys, prefix, prefix)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return keys, nil
}

type sqliteSessionStore struct {
	*DB
	logger *logger.Logger
}

// NewSQLiteSessionStore returns a [SessionStore] in the client's SQLite file.
func NewSQLiteSessionStore(db *DB, logger *logger.Logger) SessionStore {
	return &sqliteSessionStore{DB: db, logger: logger}
}

func (s *sqliteSessionStore) LoadSession(ctx context.Context) (models.Session, bool, error) {
	var (
		session models.Session
		savedAt int64
	)
	err := s.QueryRowContext(ctx, loadSession).Scan(&session.Login, &session.Token, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, false, nil
	}
	if err != nil {
		return models.Session{}, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	session.SavedAt = fromUnixMilli(savedAt)
	return session, true, nil
}

func (s *sqliteSessionStore) SaveSession(ctx context.Context, session models.Session) error {
	if session.SavedAt.IsZero() {
		session.SavedAt = time.Now()
	}
	if _, err := s.ExecContext(ctx, saveSession, session.Login, session.Token, toUnixMilli(session.SavedAt)); err != nil {
		s.logger.Err(err).Str("func", "*sqliteSessionStore.SaveSession").Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (s *sqliteSessionStore) ClearSession(ctx context.Context) error {
	if _, err := s.ExecContext(ctx, clearSession); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func toUnixMilli(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromUnixMilli(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
